package sysfs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	directoryReaderPrometheusMetrics sync.Once

	directoryReaderDirectoriesRead = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sysfs",
			Subsystem: "model",
			Name:      "directory_reader_directories_read_total",
			Help:      "Number of directory snapshots read, partitioned by outcome.",
		},
		[]string{"outcome"})
	directoryReaderFilesRead = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sysfs",
			Subsystem: "model",
			Name:      "directory_reader_files_read_total",
			Help:      "Number of attribute files read, partitioned by outcome.",
		},
		[]string{"outcome"})
)

type metricsDirectoryReader struct {
	base DirectoryReader
}

// NewMetricsDirectoryReader creates a decorator for DirectoryReader
// that exposes Prometheus metrics on how many directories and attribute
// files are read while building object graphs.
func NewMetricsDirectoryReader(base DirectoryReader) DirectoryReader {
	directoryReaderPrometheusMetrics.Do(func() {
		prometheus.MustRegister(directoryReaderDirectoriesRead)
		prometheus.MustRegister(directoryReaderFilesRead)
	})

	return &metricsDirectoryReader{
		base: base,
	}
}

func (dr *metricsDirectoryReader) ReadDirectory(directoryPath string) (*DirectorySnapshot, error) {
	snapshot, err := dr.base.ReadDirectory(directoryPath)
	if err != nil {
		directoryReaderDirectoriesRead.WithLabelValues("failure").Inc()
		return nil, err
	}
	directoryReaderDirectoriesRead.WithLabelValues("success").Inc()
	return snapshot, nil
}

func (dr *metricsDirectoryReader) ReadFile(filePath string) ([]byte, error) {
	data, err := dr.base.ReadFile(filePath)
	if err != nil {
		directoryReaderFilesRead.WithLabelValues("failure").Inc()
		return nil, err
	}
	directoryReaderFilesRead.WithLabelValues("success").Inc()
	return data, nil
}
