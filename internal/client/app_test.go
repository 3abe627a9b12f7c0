package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-kudos-board/internal/config"
	"github.com/MKhiriev/go-kudos-board/internal/logger"
	"github.com/MKhiriev/go-kudos-board/internal/mock"
	"github.com/MKhiriev/go-kudos-board/internal/service"
	"github.com/MKhiriev/go-kudos-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T) (Client, *mock.MockPrintService, *mock.MockPrintJob) {
	t.Helper()
	ctrl := gomock.NewController(t)

	printSvc := mock.NewMockPrintService(ctrl)
	printJob := mock.NewMockPrintJob(ctrl)

	app, err := NewApp(&service.ClientServices{PrintService: printSvc, PrintJob: printJob},
		config.PrinterWorkers{PollInterval: 3 * time.Second}, logger.Nop())
	require.NoError(t, err)

	return app, printSvc, printJob
}

func TestNewApp_RequiresServices(t *testing.T) {
	tests := []struct {
		name     string
		services *service.ClientServices
	}{
		{"nil", nil},
		{"empty", &service.ClientServices{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := NewApp(tt.services, config.PrinterWorkers{}, logger.Nop())
			assert.ErrorIs(t, err, errNoClientServices)
			assert.Nil(t, app)
		})
	}
}

func TestApp_Run(t *testing.T) {
	app, printSvc, printJob := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())

	gomock.InOrder(
		printSvc.EXPECT().BoardStatus(gomock.Any()).Return(models.HealthStatus{Database: models.DatabaseConnected}, nil),
		printSvc.EXPECT().Login(gomock.Any()).Return(nil),
		printSvc.EXPECT().PrintNew(gomock.Any()).Return(2, nil),
		printJob.EXPECT().Start(gomock.Any(), 3*time.Second).Do(func(context.Context, time.Duration) {
			cancel()
		}),
		printJob.EXPECT().Stop(),
	)

	assert.NoError(t, app.Run(ctx))
}

func TestApp_Run_InitialPassFailureIsNotFatal(t *testing.T) {
	app, printSvc, printJob := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	printSvc.EXPECT().BoardStatus(gomock.Any()).Return(models.HealthStatus{Database: models.DatabaseDisconnected}, nil)
	printSvc.EXPECT().Login(gomock.Any()).Return(nil)
	printSvc.EXPECT().PrintNew(gomock.Any()).Return(0, errors.New("board unreachable"))
	printJob.EXPECT().Start(gomock.Any(), 3*time.Second)
	printJob.EXPECT().Stop()

	assert.NoError(t, app.Run(ctx))
}

func TestApp_Run_LoginFailure(t *testing.T) {
	app, printSvc, _ := newTestApp(t)

	printSvc.EXPECT().BoardStatus(gomock.Any()).Return(models.HealthStatus{}, errors.New("connection refused"))
	printSvc.EXPECT().Login(gomock.Any()).Return(service.ErrLoginFailed)

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, service.ErrLoginFailed)
}
