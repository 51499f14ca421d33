package types

import (
	"fmt"
	"strings"
)

const (
	DefaultRegistry  = "docker.io"
	DefaultNamespace = "library"
	DefaultTag       = "latest"
)

type ImageReference struct {
	Original   string `json:"image"`
	Registry   string `json:"registry"`
	Repository string `json:"repository"`
	Tag        string `json:"tag"`
	Digest     string `json:"digest,omitempty"`
}

// ParseImageReference decompõe um nome de imagem em registry, repositório e
// tag. A tag é separada no último ':' e o primeiro segmento do caminho só é
// tratado como registry se contiver '.' ou ':'. Entradas ambíguas (ex: org
// com ponto no nome) produzem uma referência de melhor esforço, nunca um erro.
func ParseImageReference(image string) *ImageReference {
	ref := &ImageReference{
		Original: image,
		Registry: DefaultRegistry,
		Tag:      DefaultTag,
	}

	working := image

	if idx := strings.Index(working, "@"); idx != -1 {
		ref.Digest = working[idx+1:]
		working = working[:idx]
	}

	if idx := strings.LastIndex(working, ":"); idx != -1 {
		ref.Tag = working[idx+1:]
		working = working[:idx]
	}

	if strings.Contains(working, "/") {
		parts := strings.SplitN(working, "/", 2)
		if strings.Contains(parts[0], ".") || strings.Contains(parts[0], ":") {
			ref.Registry = parts[0]
			ref.Repository = parts[1]
		} else {
			ref.Repository = working
		}
	} else {
		ref.Repository = fmt.Sprintf("%s/%s", DefaultNamespace, working)
	}

	if ref.Registry == "index.docker.io" || ref.Registry == "registry-1.docker.io" {
		ref.Registry = DefaultRegistry
	}

	return ref
}

// CanonicalName reconstrói a referência de forma que um novo parse produza a
// mesma tripla registry/repositório/tag.
func (r *ImageReference) CanonicalName() string {
	name := fmt.Sprintf("%s:%s", r.Repository, r.Tag)
	if r.Registry != DefaultRegistry {
		name = fmt.Sprintf("%s/%s", r.Registry, name)
	}
	if r.Digest != "" {
		name = fmt.Sprintf("%s@%s", name, r.Digest)
	}
	return name
}

func (r *ImageReference) IsDockerHub() bool {
	return r.Registry == DefaultRegistry
}

// HubRepository devolve o nome do repositório no formato da API web do Docker
// Hub, que não usa o namespace implícito "library/" para imagens oficiais.
func (r *ImageReference) HubRepository() string {
	return strings.TrimPrefix(r.Repository, DefaultNamespace+"/")
}
