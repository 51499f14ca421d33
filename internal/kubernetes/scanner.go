package kubernetes

import (
	"context"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/kevinfinalboss/spyglass/internal/logger"
	"github.com/kevinfinalboss/spyglass/pkg/types"
	"github.com/kevinfinalboss/spyglass/pkg/utils"
)

type Scanner struct {
	client *Client
	logger *logger.Logger
	config *types.Config
}

func NewScanner(client *Client, log *logger.Logger, cfg *types.Config) *Scanner {
	return &Scanner{
		client: client,
		logger: log,
		config: cfg,
	}
}

// ScanNamespace coleta as imagens de todos os pods do namespace, incluindo
// init containers, sem duplicatas e na ordem em que foram vistas.
func (s *Scanner) ScanNamespace(namespace string) ([]string, error) {
	ctx := context.Background()

	s.logger.Info("scanning_namespace").
		Str("namespace", namespace).
		Send()

	pods, err := s.client.clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var images []string

	addImage := func(image string) {
		if image == "" || seen[image] {
			return
		}
		seen[image] = true
		images = append(images, image)
	}

	for _, pod := range pods.Items {
		for _, container := range pod.Spec.InitContainers {
			addImage(container.Image)
		}
		for _, container := range pod.Spec.Containers {
			addImage(container.Image)
		}
	}

	filtered := s.filterImages(images)

	s.logger.Info("images_found").
		Str("namespace", namespace).
		Int("pod_count", len(pods.Items)).
		Int("total_images", len(images)).
		Int("selected_images", len(filtered)).
		Send()

	return filtered, nil
}

func (s *Scanner) filterImages(images []string) []string {
	var selected []string

	for _, image := range images {
		if s.shouldValidate(image) {
			selected = append(selected, image)
		}
	}

	return selected
}

func (s *Scanner) shouldValidate(image string) bool {
	if s.shouldIgnoreRegistry(image) {
		s.logger.Debug("registry_ignored").
			Str("image", image).
			Send()
		return false
	}

	if s.isCustomPrivateRegistry(image) {
		s.logger.Debug("private_registry").
			Str("image", image).
			Send()
		return false
	}

	ref := types.ParseImageReference(image)
	if utils.IsPublicRegistry(ref.Registry) || utils.IsECRRegistry(ref.Registry) ||
		s.hasRegistryConfig(ref.Registry) {
		return true
	}

	// Registry desconhecido e sem credenciais configuradas: a consulta de
	// manifest só produziria falha, então a imagem fica de fora do lote.
	s.logger.Debug("unknown_registry").
		Str("image", image).
		Str("registry", ref.Registry).
		Send()
	return false
}

func (s *Scanner) hasRegistryConfig(registry string) bool {
	if s.config == nil {
		return false
	}

	for i := range s.config.Registries {
		if s.config.Registries[i].Host == registry {
			return true
		}
	}
	return false
}

func (s *Scanner) shouldIgnoreRegistry(image string) bool {
	if s.config == nil || len(s.config.ImageDetection.IgnoreRegistries) == 0 {
		return false
	}

	imageLower := strings.ToLower(image)
	for _, ignored := range s.config.ImageDetection.IgnoreRegistries {
		if strings.HasPrefix(imageLower, strings.ToLower(ignored)) {
			return true
		}
	}
	return false
}

func (s *Scanner) isCustomPrivateRegistry(image string) bool {
	if s.config == nil || len(s.config.ImageDetection.CustomPrivateRegistries) == 0 {
		return false
	}

	imageLower := strings.ToLower(image)
	for _, privateReg := range s.config.ImageDetection.CustomPrivateRegistries {
		if strings.HasPrefix(imageLower, strings.ToLower(privateReg)) {
			return true
		}
	}
	return false
}
