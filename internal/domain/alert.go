package domain

type AlertKind string

type AlertSeverity string

const (
	AlertLowAverage        AlertKind = "low_average"
	AlertLowServiceAverage AlertKind = "low_service_average"
	AlertDecliningTrend    AlertKind = "declining_trend"

	SeverityWarning AlertSeverity = "warning"
	SeverityError   AlertSeverity = "error"
)

// AlertThreshold é a média abaixo da qual um alerta é emitido
const AlertThreshold = 3.0

type Alert struct {
	Kind      AlertKind     `json:"kind"`
	Severity  AlertSeverity `json:"severity"`
	ServiceID string        `json:"service_id,omitempty"`
	Message   string        `json:"message"`
	Value     float64       `json:"value"`
}
