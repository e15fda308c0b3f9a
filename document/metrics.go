package document

import (
	"io/fs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robertof/go-factory-demos/utils"
)

var readsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "factory_demos_document_reads_total",
	Help: "Documents read, by document type and outcome.",
}, []string{"type", "result"})

var resultLabels = map[error]string{
	ErrRecordNotFound: "not_found",
	ErrInvalidRecord:  "invalid",
	fs.ErrNotExist:    "unreadable",
	fs.ErrPermission:  "unreadable",
}

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(readsCounter)
}

func resultLabel(err error) string {
	if err == nil {
		return "success"
	}

	target, ok := utils.FirstMatchingError(err, ErrRecordNotFound, ErrInvalidRecord, fs.ErrNotExist, fs.ErrPermission)
	if !ok {
		return "error"
	}

	return resultLabels[target]
}
