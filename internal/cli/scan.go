package cli

import (
	"context"
	"time"

	"github.com/kevinfinalboss/spyglass/internal/kubernetes"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: getMessage("scan_short"),
	Long:  getMessage("scan_long"),
}

var scanClusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: getMessage("scan_cluster_short"),
	Long:  getMessage("scan_cluster_long"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return scanCluster()
	},
}

func init() {
	scanCmd.AddCommand(scanClusterCmd)
}

func scanCluster() error {
	startTime := time.Now()

	client, err := kubernetes.NewClient(cfg, log)
	if err != nil {
		return err
	}

	namespaces, err := client.GetNamespaces()
	if err != nil {
		log.Error("operation_failed").Err(err).Send()
		return err
	}

	log.Info("scanning_cluster").
		Int("namespace_count", len(namespaces)).
		Strs("namespaces", namespaces).
		Send()

	scanner := kubernetes.NewScanner(client, log, cfg)

	seen := make(map[string]bool)
	var images []string

	for _, namespace := range namespaces {
		namespaceImages, err := scanner.ScanNamespace(namespace)
		if err != nil {
			log.Error("operation_failed").
				Str("namespace", namespace).
				Err(err).
				Send()
			continue
		}

		for _, image := range namespaceImages {
			if !seen[image] {
				seen[image] = true
				images = append(images, image)
			}
		}
	}

	log.Info("images_found").
		Int("unique_images", len(images)).
		Send()

	if len(images) == 0 {
		log.Info("operation_completed").
			Str("operation", "cluster_scan").
			Str("duration", time.Since(startTime).String()).
			Send()
		return nil
	}

	if err := validateImages(context.Background(), images); err != nil {
		return err
	}

	log.Info("operation_completed").
		Str("operation", "cluster_scan").
		Int("unique_images", len(images)).
		Str("duration", time.Since(startTime).String()).
		Send()

	return nil
}
