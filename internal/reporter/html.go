package reporter

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/kevinfinalboss/spyglass/internal/logger"
	"github.com/kevinfinalboss/spyglass/pkg/types"
)

type HTMLReporter struct {
	logger     *logger.Logger
	reportsDir string
}

func NewHTMLReporter(log *logger.Logger) *HTMLReporter {
	home, _ := os.UserHomeDir()
	reportsDir := filepath.Join(home, ".spyglass", "reports")

	os.MkdirAll(reportsDir, 0755)

	return &HTMLReporter{
		logger:     log,
		reportsDir: reportsDir,
	}
}

func (r *HTMLReporter) GenerateReport(batch *types.BatchResult) (string, error) {
	timestamp := time.Now()
	filename := fmt.Sprintf("spyglass-report-%s.html", timestamp.Format("2006-01-02_15-04-05"))
	reportPath := filepath.Join(r.reportsDir, filename)

	data := r.buildReportData(batch, timestamp)

	htmlContent, err := r.generateHTML(data)
	if err != nil {
		return "", fmt.Errorf("falha ao gerar HTML: %w", err)
	}

	if err := os.WriteFile(reportPath, []byte(htmlContent), 0644); err != nil {
		return "", fmt.Errorf("falha ao salvar relatório: %w", err)
	}

	r.logger.Info("html_report_generated").
		Str("file", reportPath).
		Int("total_images", batch.TotalImages).
		Send()

	return reportPath, nil
}

func (r *HTMLReporter) buildReportData(batch *types.BatchResult, timestamp time.Time) types.ReportData {
	return types.ReportData{
		Title:          "Spyglass - Relatório de Validação",
		Timestamp:      timestamp.Format("2006-01-02 15:04:05"),
		Summary:        batch,
		Statistics:     r.calculateStatistics(batch),
		RegistryStats:  r.calculateRegistryStats(batch),
		ImagesByStatus: r.buildImageStatusList(batch),
		HasFailures:    batch.FailureCount() > 0,
	}
}

func (r *HTMLReporter) calculateStatistics(batch *types.BatchResult) types.ReportStatistics {
	total := float64(batch.TotalImages)
	if total == 0 {
		total = 1
	}

	return types.ReportStatistics{
		TotalImages: batch.TotalImages,
		FoundRate:   float64(batch.SuccessCount()) / total * 100,
		MissingRate: float64(batch.FailureCount()) / total * 100,
	}
}

func (r *HTMLReporter) calculateRegistryStats(batch *types.BatchResult) []types.RegistryStatistic {
	registryStats := make(map[string]*types.RegistryStatistic)

	for _, result := range batch.Results {
		stat, exists := registryStats[result.Registry]
		if !exists {
			stat = &types.RegistryStatistic{Name: result.Registry}
			registryStats[result.Registry] = stat
		}

		stat.ImagesCount++
		if result.Exists {
			stat.FoundCount++
		} else {
			stat.MissingCount++
		}
	}

	var stats []types.RegistryStatistic
	for _, stat := range registryStats {
		if stat.ImagesCount > 0 {
			stat.FoundRate = float64(stat.FoundCount) / float64(stat.ImagesCount) * 100
		}
		stats = append(stats, *stat)
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Name < stats[j].Name
	})

	return stats
}

func (r *HTMLReporter) buildImageStatusList(batch *types.BatchResult) []types.ImageStatus {
	sortedImages := make([]string, 0, len(batch.Results))
	for image := range batch.Results {
		sortedImages = append(sortedImages, image)
	}
	sort.Strings(sortedImages)

	var images []types.ImageStatus
	for _, image := range sortedImages {
		result := batch.Results[image]

		status := "Encontrada"
		statusClass := "success"
		errorMsg := ""

		if !result.Exists {
			status = "Não encontrada"
			statusClass = "danger"
			errorMsg = strings.Join(result.Errors, "; ")
		}

		images = append(images, types.ImageStatus{
			Image:       image,
			Registry:    result.Registry,
			Repository:  result.Repository,
			Tag:         result.Tag,
			Status:      status,
			StatusClass: statusClass,
			Error:       errorMsg,
			TagCount:    len(result.Tags),
		})
	}

	return images
}

func (r *HTMLReporter) generateHTML(data types.ReportData) (string, error) {
	tmpl := `<!DOCTYPE html>
<html lang="pt-BR">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - {{.Timestamp}}</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background: #f5f7fa; color: #333; line-height: 1.6; }
        .container { max-width: 1200px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px; border-radius: 10px; margin-bottom: 30px; box-shadow: 0 10px 30px rgba(0,0,0,0.1); }
        .header h1 { font-size: 2.5rem; margin-bottom: 10px; text-shadow: 2px 2px 4px rgba(0,0,0,0.3); }
        .header p { font-size: 1.1rem; opacity: 0.9; }
        .stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(250px, 1fr)); gap: 20px; margin-bottom: 30px; }
        .stat-card { background: white; padding: 25px; border-radius: 10px; box-shadow: 0 5px 15px rgba(0,0,0,0.08); border-left: 5px solid #667eea; }
        .stat-card h3 { color: #667eea; font-size: 2rem; margin-bottom: 5px; }
        .stat-card p { color: #666; font-weight: 500; }
        .section { background: white; margin-bottom: 30px; border-radius: 10px; overflow: hidden; box-shadow: 0 5px 15px rgba(0,0,0,0.08); }
        .section-header { background: #667eea; color: white; padding: 20px; font-size: 1.3rem; font-weight: 600; }
        .section-content { padding: 25px; }
        .table { width: 100%; border-collapse: collapse; margin-top: 10px; }
        .table th, .table td { padding: 12px; text-align: left; border-bottom: 1px solid #eee; }
        .table th { background: #f8f9fa; font-weight: 600; color: #333; }
        .table tr:hover { background: #f8f9fa; }
        .badge { padding: 4px 12px; border-radius: 20px; font-size: 0.85rem; font-weight: 500; }
        .badge.success { background: #d4edda; color: #155724; }
        .badge.danger { background: #f8d7da; color: #721c24; }
        .progress-bar { width: 100%; height: 8px; background: #eee; border-radius: 4px; overflow: hidden; }
        .progress-fill { height: 100%; transition: width 0.3s ease; }
        .progress-success { background: #28a745; }
        .progress-danger { background: #dc3545; }
        .footer { text-align: center; padding: 30px; color: #666; border-top: 1px solid #eee; margin-top: 30px; }
        .logo { font-size: 1.5rem; margin-right: 10px; }
        .truncate { max-width: 300px; overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }
        @media (max-width: 768px) { .stats-grid { grid-template-columns: 1fr; } .table { font-size: 0.9rem; } }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1><span class="logo">🔭</span>{{.Title}}</h1>
            <p>Relatório gerado em {{.Timestamp}}</p>
        </div>

        <div class="stats-grid">
            <div class="stat-card">
                <h3>{{.Summary.TotalImages}}</h3>
                <p>Total de Imagens</p>
            </div>
            <div class="stat-card">
                <h3>{{.Summary.SuccessCount}}</h3>
                <p>Imagens Encontradas</p>
            </div>
            <div class="stat-card">
                <h3>{{.Summary.FailureCount}}</h3>
                <p>Não Encontradas</p>
            </div>
            <div class="stat-card">
                <h3>{{printf "%.1f%%" .Statistics.FoundRate}}</h3>
                <p>Taxa de Existência</p>
            </div>
        </div>

        <div class="section">
            <div class="section-header">📊 Estatísticas</div>
            <div class="section-content">
                <div style="margin-bottom: 20px;">
                    <div style="display: flex; justify-content: space-between; margin-bottom: 5px;">
                        <span>Imagens Encontradas</span>
                        <span>{{printf "%.1f%%" .Statistics.FoundRate}}</span>
                    </div>
                    <div class="progress-bar">
                        <div class="progress-fill progress-success" style="width: {{.Statistics.FoundRate}}%"></div>
                    </div>
                </div>

                {{if .HasFailures}}
                <div style="margin-bottom: 20px;">
                    <div style="display: flex; justify-content: space-between; margin-bottom: 5px;">
                        <span>Imagens Não Encontradas</span>
                        <span>{{printf "%.1f%%" .Statistics.MissingRate}}</span>
                    </div>
                    <div class="progress-bar">
                        <div class="progress-fill progress-danger" style="width: {{.Statistics.MissingRate}}%"></div>
                    </div>
                </div>
                {{end}}
            </div>
        </div>

        {{if .RegistryStats}}
        <div class="section">
            <div class="section-header">🎯 Estatísticas por Registry</div>
            <div class="section-content">
                <table class="table">
                    <thead>
                        <tr>
                            <th>Registry</th>
                            <th>Imagens</th>
                            <th>Encontradas</th>
                            <th>Não Encontradas</th>
                            <th>Taxa</th>
                        </tr>
                    </thead>
                    <tbody>
                        {{range .RegistryStats}}
                        <tr>
                            <td><strong>{{.Name}}</strong></td>
                            <td>{{.ImagesCount}}</td>
                            <td style="color: #28a745;">{{.FoundCount}}</td>
                            <td style="color: #dc3545;">{{.MissingCount}}</td>
                            <td>{{printf "%.1f%%" .FoundRate}}</td>
                        </tr>
                        {{end}}
                    </tbody>
                </table>
            </div>
        </div>
        {{end}}

        <div class="section">
            <div class="section-header">📋 Detalhes das Validações</div>
            <div class="section-content">
                <table class="table">
                    <thead>
                        <tr>
                            <th>Imagem</th>
                            <th>Registry</th>
                            <th>Repositório</th>
                            <th>Tag</th>
                            <th>Status</th>
                            <th>Tags Disponíveis</th>
                        </tr>
                    </thead>
                    <tbody>
                        {{range .ImagesByStatus}}
                        <tr>
                            <td class="truncate" title="{{.Image}}">{{.Image}}</td>
                            <td><strong>{{.Registry}}</strong></td>
                            <td>{{.Repository}}</td>
                            <td>{{.Tag}}</td>
                            <td><span class="badge {{.StatusClass}}">{{.Status}}</span></td>
                            <td>{{.TagCount}}</td>
                        </tr>
                        {{if .Error}}
                        <tr style="background: #fff3cd;">
                            <td colspan="6" style="font-size: 0.9rem; color: #856404;">
                                <strong>Erro:</strong> {{.Error}}
                            </td>
                        </tr>
                        {{end}}
                        {{end}}
                    </tbody>
                </table>
            </div>
        </div>

        <div class="footer">
            <p>🔭 <strong>Spyglass</strong> | Relatório gerado automaticamente</p>
            <p style="font-size: 0.9rem; margin-top: 10px;">
                Este relatório contém o resultado da validação de existência de imagens Docker.
            </p>
        </div>
    </div>
</body>
</html>`

	t, err := template.New("report").Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
