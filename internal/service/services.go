package service

import (
	"github.com/dgckit/go-dgc-verifier/internal/config"
	"github.com/dgckit/go-dgc-verifier/internal/gateway"
	"github.com/dgckit/go-dgc-verifier/internal/logger"
	"github.com/dgckit/go-dgc-verifier/internal/rules"
	"github.com/dgckit/go-dgc-verifier/internal/store"
)

type Services struct {
	SyncController SyncController
	SyncJob        SyncJob
}

func NewServices(storages *store.Storages, gw gateway.Gateway, catalog *rules.Catalog, cfg config.Sync, logger *logger.Logger) *Services {
	controller := NewSyncController(
		gw,
		storages.RevocationRepository,
		storages.SyncStateRepository,
		catalog,
		cfg,
		logger,
	)

	return &Services{
		SyncController: controller,
		SyncJob:        NewSyncJob(controller),
	}
}
