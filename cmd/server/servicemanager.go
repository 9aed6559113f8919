/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/wso2/ob-consent-enforcement/internal/accountdata"
	"github.com/wso2/ob-consent-enforcement/internal/accountdata/redactor"
	"github.com/wso2/ob-consent-enforcement/internal/consent"
	"github.com/wso2/ob-consent-enforcement/internal/idempotency"
	"github.com/wso2/ob-consent-enforcement/internal/payment"
	"github.com/wso2/ob-consent-enforcement/internal/system/config"
	"github.com/wso2/ob-consent-enforcement/internal/system/constants"
	"github.com/wso2/ob-consent-enforcement/internal/system/database"
	"github.com/wso2/ob-consent-enforcement/internal/system/log"
	"github.com/wso2/ob-consent-enforcement/internal/system/metrics"
	"github.com/wso2/ob-consent-enforcement/internal/system/middleware"
)

// Package-level references for cleanup during shutdown
var redisClient *redis.Client

// registerServices wires the modules and registers their routes on router.
func registerServices(ctx context.Context, router *gin.Engine, cfg *config.Config, db *database.DB) error {
	logger := log.GetLogger()

	router.Use(middleware.CorrelationIDMiddleware(), middleware.CORSMiddleware(cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	if cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, gin.WrapH(metrics.Get().Handler()))
	}

	var cache idempotency.ReplayCache
	if cfg.Redis.Enabled {
		client, err := idempotency.NewRedisClient(ctx, cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		redisClient = client
		cache = idempotency.NewRedisReplayCache(client, cfg.Redis.Prefix)
		logger.Info("Replay cache enabled", log.String("address", cfg.Redis.Address))
	}

	api := router.Group(constants.APIBasePath, middleware.ClientIDMiddleware())

	consentService := consent.Initialize(db)
	coordinator := idempotency.NewCoordinator(idempotency.NewStore(db), cache, cfg.Idempotency.KeyExpiration)

	_ = payment.Initialize(api, consentService, coordinator, cfg.Idempotency.MaxKeyLength)
	logger.Info("Payment module initialized")

	r := redactor.New(redactor.Config{ShowInternalIDs: cfg.Redaction.ShowInternalIDs, PANMask: cfg.Redaction.PANMask})
	_ = accountdata.Initialize(api, db, consentService, r)
	logger.Info("Account data module initialized")

	return nil
}

// unregisterServices releases connections held by the modules.
func unregisterServices() {
	if redisClient == nil {
		return
	}
	if err := redisClient.Close(); err != nil {
		log.GetLogger().Error("Failed to close redis client", log.Error(err))
	}
}
