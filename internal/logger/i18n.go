package logger

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type LocaleMessages struct {
	Messages map[string]string `yaml:"messages"`
}

func loadLocaleMessages(language string) (map[string]string, error) {
	filename := language + ".yaml"

	localeFile := filepath.Join("locales", filename)

	data, err := os.ReadFile(localeFile)
	if err != nil {
		fallbackFile := filepath.Join("locales", "en-US.yaml")
		data, err = os.ReadFile(fallbackFile)
		if err != nil {
			return getEmbeddedMessages(language), nil
		}
	}

	var locale LocaleMessages
	if err := yaml.Unmarshal(data, &locale); err != nil {
		return getEmbeddedMessages(language), nil
	}

	return locale.Messages, nil
}

func getEmbeddedMessages(language string) map[string]string {
	switch strings.ToLower(language) {
	case "pt-br":
		return map[string]string{
			"app_started":           "Spyglass iniciado",
			"validating_image":      "Validando imagem",
			"image_exists":          "Imagem encontrada no registry",
			"image_not_found":       "Imagem não encontrada no registry",
			"image_check_failed":    "Falha ao verificar imagem",
			"token_request_failed":  "Falha ao obter token do registry",
			"hub_fallback":          "Usando API do Docker Hub como fallback",
			"metadata_fetch_failed": "Falha ao buscar metadados do repositório",
			"tags_fetch_failed":     "Falha ao listar tags do repositório",
			"batch_started":         "Validação em lote iniciada",
			"batch_completed":       "Validação em lote concluída",
			"results_saved":         "Resultados salvos em arquivo",
			"connecting_k8s":        "Conectando ao cluster Kubernetes",
			"k8s_connected":         "Conectado ao cluster Kubernetes",
			"k8s_connection_failed": "Falha ao conectar com o cluster",
			"scanning_cluster":      "Escaneando cluster",
			"scanning_namespace":    "Escaneando namespace",
			"images_found":          "Imagens encontradas",
			"registry_ignored":      "Registry ignorado pela configuração",
			"private_registry":      "Imagem de registry privado ignorada",
			"unknown_registry":      "Registry sem credenciais configuradas, imagem ignorada",
			"configured_namespaces": "Usando namespaces da configuração",
			"discovered_namespaces": "Namespaces descobertos no cluster",
			"scan_short":            "Escaneia fontes de imagens para validação",
			"scan_long":             "Escaneia fontes externas (como clusters Kubernetes) em busca de imagens para validar",
			"scan_cluster_short":    "Valida as imagens em uso no cluster Kubernetes",
			"scan_cluster_long":     "Coleta as imagens dos pods do cluster e valida a existência de cada uma no registry de origem",
			"config_not_found":      "Arquivo de configuração não encontrado",
			"config_loaded":         "Configuração carregada",
			"config_created":        "Arquivo de configuração criado",
			"config_already_exists": "Arquivo de configuração já existe",
			"operation_completed":   "Operação concluída",
			"operation_failed":      "Operação falhou",
			"html_report_generated": "Relatório HTML gerado",
			"discord_webhook_sent":  "Webhook Discord enviado",
			"validation_summary":    "Resumo da validação",
			"image_result":          "Resultado da imagem",
			"validation_totals":     "Totais da validação",
		}
	case "es-es":
		return map[string]string{
			"app_started":           "Spyglass iniciado",
			"validating_image":      "Validando imagen",
			"image_exists":          "Imagen encontrada en el registry",
			"image_not_found":       "Imagen no encontrada en el registry",
			"image_check_failed":    "Error al verificar la imagen",
			"token_request_failed":  "Error al obtener el token del registry",
			"hub_fallback":          "Usando la API de Docker Hub como fallback",
			"metadata_fetch_failed": "Error al buscar metadatos del repositorio",
			"tags_fetch_failed":     "Error al listar tags del repositorio",
			"batch_started":         "Validación en lote iniciada",
			"batch_completed":       "Validación en lote completada",
			"results_saved":         "Resultados guardados en archivo",
			"connecting_k8s":        "Conectando al cluster de Kubernetes",
			"k8s_connected":         "Conectado al cluster de Kubernetes",
			"k8s_connection_failed": "Error al conectar con el cluster",
			"scanning_cluster":      "Escaneando cluster",
			"scanning_namespace":    "Escaneando namespace",
			"images_found":          "Imágenes encontradas",
			"registry_ignored":      "Registry ignorado por la configuración",
			"private_registry":      "Imagen de registry privado ignorada",
			"unknown_registry":      "Registry sin credenciales configuradas, imagen ignorada",
			"configured_namespaces": "Usando namespaces de la configuración",
			"discovered_namespaces": "Namespaces descubiertos en el cluster",
			"scan_short":            "Escanea fuentes de imágenes para validación",
			"scan_long":             "Escanea fuentes externas (como clusters de Kubernetes) en busca de imágenes para validar",
			"scan_cluster_short":    "Valida las imágenes en uso en el cluster de Kubernetes",
			"scan_cluster_long":     "Recolecta las imágenes de los pods del cluster y valida la existencia de cada una en su registry de origen",
			"config_not_found":      "Archivo de configuración no encontrado",
			"config_loaded":         "Configuración cargada",
			"config_created":        "Archivo de configuración creado",
			"config_already_exists": "Archivo de configuración ya existe",
			"operation_completed":   "Operación completada",
			"operation_failed":      "Operación falló",
			"html_report_generated": "Reporte HTML generado",
			"discord_webhook_sent":  "Webhook de Discord enviado",
			"validation_summary":    "Resumen de la validación",
			"image_result":          "Resultado de la imagen",
			"validation_totals":     "Totales de la validación",
		}
	default:
		return map[string]string{
			"app_started":           "Spyglass started",
			"validating_image":      "Validating image",
			"image_exists":          "Image found in registry",
			"image_not_found":       "Image not found in registry",
			"image_check_failed":    "Failed to check image",
			"token_request_failed":  "Failed to obtain registry token",
			"hub_fallback":          "Falling back to the Docker Hub API",
			"metadata_fetch_failed": "Failed to fetch repository metadata",
			"tags_fetch_failed":     "Failed to list repository tags",
			"batch_started":         "Batch validation started",
			"batch_completed":       "Batch validation completed",
			"results_saved":         "Results saved to file",
			"connecting_k8s":        "Connecting to Kubernetes cluster",
			"k8s_connected":         "Connected to Kubernetes cluster",
			"k8s_connection_failed": "Failed to connect to cluster",
			"scanning_cluster":      "Scanning cluster",
			"scanning_namespace":    "Scanning namespace",
			"images_found":          "Images found",
			"registry_ignored":      "Registry ignored by configuration",
			"private_registry":      "Custom private registry image skipped",
			"unknown_registry":      "Registry has no configured credentials, image skipped",
			"configured_namespaces": "Using configured namespaces",
			"discovered_namespaces": "Namespaces discovered in cluster",
			"scan_short":            "Scans image sources for validation",
			"scan_long":             "Scans external sources (such as Kubernetes clusters) for images to validate",
			"scan_cluster_short":    "Validates the images running in the Kubernetes cluster",
			"scan_cluster_long":     "Collects pod images from the cluster and validates each one against its source registry",
			"config_not_found":      "Configuration file not found",
			"config_loaded":         "Configuration loaded",
			"config_created":        "Configuration file created",
			"config_already_exists": "Configuration file already exists",
			"operation_completed":   "Operation completed",
			"operation_failed":      "Operation failed",
			"html_report_generated": "HTML report generated",
			"discord_webhook_sent":  "Discord webhook sent",
			"validation_summary":    "Validation summary",
			"image_result":          "Image result",
			"validation_totals":     "Validation totals",
		}
	}
}
