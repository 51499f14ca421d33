package types

type ReportData struct {
	Title          string
	Timestamp      string
	Summary        *BatchResult
	Statistics     ReportStatistics
	RegistryStats  []RegistryStatistic
	ImagesByStatus []ImageStatus
	HasFailures    bool
}

type ReportStatistics struct {
	TotalImages int
	FoundRate   float64
	MissingRate float64
}

type RegistryStatistic struct {
	Name         string
	ImagesCount  int
	FoundCount   int
	MissingCount int
	FoundRate    float64
}

type ImageStatus struct {
	Image       string
	Registry    string
	Repository  string
	Tag         string
	Status      string
	StatusClass string
	Error       string
	TagCount    int
}
