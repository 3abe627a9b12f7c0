package service

import (
	"io"

	"github.com/MKhiriev/go-kudos-board/internal/adapter"
	"github.com/MKhiriev/go-kudos-board/internal/config"
	"github.com/MKhiriev/go-kudos-board/internal/logger"
	"github.com/MKhiriev/go-kudos-board/internal/store"
)

type ClientServices struct {
	PrintService PrintService
	PrintJob     PrintJob
}

func NewClientServices(storages *store.ClientStorages, boardAdapter adapter.BoardAdapter, cfg config.PrinterConfig, out io.Writer, logger *logger.Logger) *ClientServices {
	printSvc := NewPrintService(boardAdapter, storages.PrintJournal, cfg, out, logger)

	return &ClientServices{
		PrintService: printSvc,
		PrintJob:     NewPrintJob(printSvc, logger),
	}
}
