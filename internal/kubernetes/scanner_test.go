package kubernetes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/kevinfinalboss/spyglass/internal/logger"
	"github.com/kevinfinalboss/spyglass/pkg/types"
)

func newPod(namespace, name string, initImages, images []string) *corev1.Pod {
	pod := &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
	}

	for _, image := range initImages {
		pod.Spec.InitContainers = append(pod.Spec.InitContainers, corev1.Container{
			Name:  name + "-init",
			Image: image,
		})
	}
	for _, image := range images {
		pod.Spec.Containers = append(pod.Spec.Containers, corev1.Container{
			Name:  name + "-main",
			Image: image,
		})
	}

	return pod
}

func newTestScanner(cfg *types.Config, pods ...*corev1.Pod) *Scanner {
	objects := make([]runtime.Object, 0, len(pods))
	for _, pod := range pods {
		objects = append(objects, pod)
	}

	client := &Client{
		clientset: fake.NewSimpleClientset(objects...),
		config:    cfg,
		logger:    logger.NewTest(),
	}

	return NewScanner(client, logger.NewTest(), cfg)
}

func TestScanner_ScanNamespace(t *testing.T) {
	cfg := &types.Config{}

	scanner := newTestScanner(cfg,
		newPod("production", "web", []string{"busybox:1.36"}, []string{"nginx:latest"}),
		newPod("production", "api", nil, []string{"myorg/api:v2", "nginx:latest"}),
		newPod("staging", "other", nil, []string{"redis:7"}),
	)

	images, err := scanner.ScanNamespace("production")
	require.NoError(t, err)

	assert.Equal(t, []string{"busybox:1.36", "nginx:latest", "myorg/api:v2"}, images)
}

func TestScanner_ScanNamespace_IgnoredRegistries(t *testing.T) {
	cfg := &types.Config{
		ImageDetection: types.ImageDetectionConfig{
			IgnoreRegistries: []string{"localhost", "127.0.0.1"},
		},
	}

	scanner := newTestScanner(cfg,
		newPod("default", "app", nil, []string{
			"localhost:5000/dev/app:latest",
			"nginx:latest",
			"127.0.0.1:5000/test:v1",
		}),
	)

	images, err := scanner.ScanNamespace("default")
	require.NoError(t, err)

	assert.Equal(t, []string{"nginx:latest"}, images)
}

func TestScanner_ScanNamespace_CustomPrivateRegistries(t *testing.T) {
	cfg := &types.Config{
		ImageDetection: types.ImageDetectionConfig{
			CustomPrivateRegistries: []string{"registry.internal.example.com"},
		},
	}

	scanner := newTestScanner(cfg,
		newPod("default", "app", nil, []string{
			"registry.internal.example.com/team/app:v1",
			"quay.io/org/app:v1",
		}),
	)

	images, err := scanner.ScanNamespace("default")
	require.NoError(t, err)

	assert.Equal(t, []string{"quay.io/org/app:v1"}, images)
}

func TestScanner_ScanNamespace_UnknownRegistrySkipped(t *testing.T) {
	cfg := &types.Config{
		Registries: []types.RegistryConfig{
			{Name: "internal", Host: "registry.company.com:5000", Username: "admin"},
		},
	}

	scanner := newTestScanner(cfg,
		newPod("default", "app", nil, []string{
			"nginx:latest",
			"quay.io/org/app:v1",
			"registry.company.com:5000/team/app:v2",
			"123456789012.dkr.ecr.us-east-1.amazonaws.com/team/app:v3",
			"unknown.example.com/team/app:v1",
		}),
	)

	images, err := scanner.ScanNamespace("default")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"nginx:latest",
		"quay.io/org/app:v1",
		"registry.company.com:5000/team/app:v2",
		"123456789012.dkr.ecr.us-east-1.amazonaws.com/team/app:v3",
	}, images)
}

func TestScanner_ScanNamespace_Empty(t *testing.T) {
	scanner := newTestScanner(&types.Config{})

	images, err := scanner.ScanNamespace("empty")
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestClient_GetNamespaces_Configured(t *testing.T) {
	cfg := &types.Config{
		Kubernetes: types.KubernetesConfig{
			Namespaces: []string{"production", "staging"},
		},
	}

	client := &Client{
		clientset: fake.NewSimpleClientset(),
		config:    cfg,
		logger:    logger.NewTest(),
	}

	namespaces, err := client.GetNamespaces()
	require.NoError(t, err)
	assert.Equal(t, []string{"production", "staging"}, namespaces)
}

func TestClient_GetNamespaces_Discovered(t *testing.T) {
	client := &Client{
		clientset: fake.NewSimpleClientset(
			&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "default"}},
			&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "kube-system"}},
		),
		config: &types.Config{},
		logger: logger.NewTest(),
	}

	namespaces, err := client.GetNamespaces()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"default", "kube-system"}, namespaces)
}
