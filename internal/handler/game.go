package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/game"
	"github.com/hypez33/grow-lab-zen-sub000/internal/logger"
)

// GameHandler exposes the game service over HTTP
type GameHandler struct {
	svc game.Service
}

// NewGameHandler creates a GameHandler
func NewGameHandler(svc game.Service) *GameHandler {
	return &GameHandler{svc: svc}
}

// Routes mounts every game endpoint on r
func (h *GameHandler) Routes(r chi.Router) {
	r.Get("/state", h.HandleGetState)

	r.Route("/grow", func(r chi.Router) {
		r.Post("/plant", h.HandlePlant())
		r.Post("/tap", h.HandleTap())
		r.Post("/water", h.HandleWater())
		r.Post("/fertilize", h.HandleFertilize())
		r.Post("/soil", h.HandleSoil())
		r.Post("/harvest", h.HandleHarvest())
	})

	r.Route("/drying", func(r chi.Router) {
		r.Post("/start", h.HandleStartDrying())
		r.Post("/collect", h.HandleCollectRack())
	})

	r.Route("/sales", func(r chi.Router) {
		r.Post("/sell", h.HandleSell())
		r.Put("/auto-sell", h.HandleSetAutoSell())
		r.Post("/channels/unlock", h.HandleUnlockChannel())
	})

	r.Route("/shop", func(r chi.Router) {
		r.Post("/seeds", h.HandleBuySeed())
		r.Post("/fertilizers", h.HandleBuyFertilizer())
		r.Post("/soils", h.HandleBuySoil())
		r.Post("/upgrades", h.HandleBuyUpgrade())
		r.Post("/slots", h.HandleUnlockSlot())
		r.Post("/racks", h.HandleUnlockRack())
	})

	r.Route("/workers", func(r chi.Router) {
		r.Post("/buy", h.HandleBuyWorker())
		r.Post("/upgrade", h.HandleUpgradeWorker())
		r.Post("/pause", h.HandleToggleWorkerPause())
	})

	r.Route("/save", func(r chi.Router) {
		r.Post("/", h.HandleSave)
		r.Get("/export", h.HandleExport)
		r.Post("/import", h.HandleImport())
	})
}

// HandleGetState returns the live snapshot
// @Summary Get game state
// @Description Returns the full live snapshot: ledger, slots, racks, inventory, channels, workers and dealer log
// @Tags state
// @Produce json
// @Success 200 {object} domain.State
// @Router /state [get]
// @Security ApiKeyAuth
func (h *GameHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Snapshot())
}

// HandlePlant plants a seed from the pool into an empty slot
// @Summary Plant a seed
// @Tags grow
// @Accept json
// @Produce json
// @Param request body PlantRequest true "Slot and seed"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} domain.ActionResult
// @Router /grow/plant [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandlePlant() http.HandlerFunc {
	return handleAction("plant", func(ctx context.Context, req PlantRequest) domain.ActionResult {
		return h.svc.Plant(ctx, req.Slot, req.SeedID)
	})
}

// HandleTap adds a fixed amount of progress to a growing slot
// @Summary Tap a slot
// @Tags grow
// @Accept json
// @Produce json
// @Param request body SlotRequest true "Slot"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} domain.ActionResult
// @Router /grow/tap [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleTap() http.HandlerFunc {
	return handleAction("tap", func(ctx context.Context, req SlotRequest) domain.ActionResult {
		return h.svc.Tap(ctx, req.Slot)
	})
}

// HandleWater refills a slot's water level
// @Summary Water a slot
// @Tags grow
// @Accept json
// @Produce json
// @Param request body SlotRequest true "Slot"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} domain.ActionResult
// @Router /grow/water [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleWater() http.HandlerFunc {
	return handleAction("water", func(ctx context.Context, req SlotRequest) domain.ActionResult {
		return h.svc.Water(ctx, req.Slot)
	})
}

// HandleFertilize applies an owned fertilizer pack to a slot
// @Summary Apply fertilizer
// @Tags grow
// @Accept json
// @Produce json
// @Param request body FertilizeRequest true "Slot and fertilizer"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} domain.ActionResult
// @Router /grow/fertilize [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleFertilize() http.HandlerFunc {
	return handleAction("fertilize", func(ctx context.Context, req FertilizeRequest) domain.ActionResult {
		return h.svc.ApplyFertilizer(ctx, req.Slot, req.FertilizerID)
	})
}

// HandleSoil swaps the soil of a slot
// @Summary Apply soil
// @Tags grow
// @Accept json
// @Produce json
// @Param request body SoilRequest true "Slot and soil"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} domain.ActionResult
// @Router /grow/soil [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleSoil() http.HandlerFunc {
	return handleAction("soil", func(ctx context.Context, req SoilRequest) domain.ActionResult {
		return h.svc.ApplySoil(ctx, req.Slot, req.SoilID)
	})
}

// HandleHarvest harvests a slot at the harvest stage
// @Summary Harvest a slot
// @Description Rolls yield, crits, drops and trait bonuses and adds a wet bud to the inventory
// @Tags grow
// @Accept json
// @Produce json
// @Param request body SlotRequest true "Slot"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} domain.ActionResult
// @Router /grow/harvest [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleHarvest() http.HandlerFunc {
	return handleAction("harvest", func(ctx context.Context, req SlotRequest) domain.ActionResult {
		return h.svc.Harvest(ctx, req.Slot)
	})
}

// HandleStartDrying hangs a wet bud on an empty rack
// @Summary Start drying
// @Tags drying
// @Accept json
// @Produce json
// @Param request body DryRequest true "Rack and bud"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} domain.ActionResult
// @Router /drying/start [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleStartDrying() http.HandlerFunc {
	return handleAction("start_drying", func(ctx context.Context, req DryRequest) domain.ActionResult {
		return h.svc.StartDrying(ctx, req.Rack, req.BudID)
	})
}

// HandleCollectRack collects a fully dried bud
// @Summary Collect a rack
// @Tags drying
// @Accept json
// @Produce json
// @Param request body RackRequest true "Rack"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} domain.ActionResult
// @Router /drying/collect [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleCollectRack() http.HandlerFunc {
	return handleAction("collect_rack", func(ctx context.Context, req RackRequest) domain.ActionResult {
		return h.svc.CollectRack(ctx, req.Rack)
	})
}

// HandleSell sells grams of a dried bud through a channel
// @Summary Sell product
// @Description Rejected unless the channel is unlocked, off cooldown and accepts the bud's quality and grams
// @Tags sales
// @Accept json
// @Produce json
// @Param request body SellRequest true "Bud, channel and grams"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} domain.ActionResult
// @Router /sales/sell [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleSell() http.HandlerFunc {
	return handleAction("sell", func(ctx context.Context, req SellRequest) domain.ActionResult {
		return h.svc.Sell(ctx, req.BudID, req.ChannelID, req.Grams)
	})
}

// HandleSetAutoSell replaces the auto-sell settings
// @Summary Configure auto-sell
// @Tags sales
// @Accept json
// @Produce json
// @Param request body AutoSellRequest true "Auto-sell settings"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} domain.ActionResult
// @Router /sales/auto-sell [put]
// @Security ApiKeyAuth
func (h *GameHandler) HandleSetAutoSell() http.HandlerFunc {
	return handleAction("auto_sell", func(ctx context.Context, req AutoSellRequest) domain.ActionResult {
		return h.svc.SetAutoSell(ctx, req.Settings())
	})
}

// HandleUnlockChannel buys access to a sales channel
// @Summary Unlock a sales channel
// @Tags sales
// @Accept json
// @Produce json
// @Param request body IDRequest true "Channel id"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} domain.ActionResult
// @Router /sales/channels/unlock [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleUnlockChannel() http.HandlerFunc {
	return handleAction("unlock_channel", func(ctx context.Context, req IDRequest) domain.ActionResult {
		return h.svc.UnlockChannel(ctx, req.ID)
	})
}

// HandleBuySeed buys a seed from the catalog
// @Summary Buy a seed
// @Tags shop
// @Accept json
// @Produce json
// @Param request body IDRequest true "Seed template id"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} domain.ActionResult
// @Router /shop/seeds [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleBuySeed() http.HandlerFunc {
	return handleAction("buy_seed", func(ctx context.Context, req IDRequest) domain.ActionResult {
		return h.svc.BuySeed(ctx, req.ID)
	})
}

// HandleBuyFertilizer buys a fertilizer pack
// @Summary Buy fertilizer
// @Tags shop
// @Accept json
// @Produce json
// @Param request body IDRequest true "Fertilizer id"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} domain.ActionResult
// @Router /shop/fertilizers [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleBuyFertilizer() http.HandlerFunc {
	return handleAction("buy_fertilizer", func(ctx context.Context, req IDRequest) domain.ActionResult {
		return h.svc.BuyFertilizer(ctx, req.ID)
	})
}

// HandleBuySoil buys a bag of soil
// @Summary Buy soil
// @Tags shop
// @Accept json
// @Produce json
// @Param request body IDRequest true "Soil id"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} domain.ActionResult
// @Router /shop/soils [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleBuySoil() http.HandlerFunc {
	return handleAction("buy_soil", func(ctx context.Context, req IDRequest) domain.ActionResult {
		return h.svc.BuySoil(ctx, req.ID)
	})
}

// HandleBuyUpgrade buys the next level of an upgrade track
// @Summary Buy an upgrade
// @Description Priced in the track currency: coins, gems, or one skill point per level
// @Tags shop
// @Accept json
// @Produce json
// @Param request body UpgradeRequest true "Upgrade kind"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} domain.ActionResult
// @Router /shop/upgrades [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleBuyUpgrade() http.HandlerFunc {
	return handleAction("buy_upgrade", func(ctx context.Context, req UpgradeRequest) domain.ActionResult {
		return h.svc.BuyUpgrade(ctx, domain.UpgradeKind(req.Kind))
	})
}

// HandleUnlockSlot unlocks the next grow slot
// @Summary Unlock a grow slot
// @Tags shop
// @Produce json
// @Success 200 {object} domain.ActionResult
// @Failure 422 {object} domain.ActionResult
// @Router /shop/slots [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleUnlockSlot() http.HandlerFunc {
	return handleBodyless(h.svc.UnlockSlot)
}

// HandleUnlockRack unlocks the next drying rack
// @Summary Unlock a drying rack
// @Tags shop
// @Produce json
// @Success 200 {object} domain.ActionResult
// @Failure 422 {object} domain.ActionResult
// @Router /shop/racks [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleUnlockRack() http.HandlerFunc {
	return handleBodyless(h.svc.UnlockRack)
}

// HandleBuyWorker hires a worker
// @Summary Hire a worker
// @Tags workers
// @Accept json
// @Produce json
// @Param request body IDRequest true "Worker id"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} domain.ActionResult
// @Router /workers/buy [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleBuyWorker() http.HandlerFunc {
	return handleAction("buy_worker", func(ctx context.Context, req IDRequest) domain.ActionResult {
		return h.svc.BuyWorker(ctx, req.ID)
	})
}

// HandleUpgradeWorker raises a worker one level
// @Summary Upgrade a worker
// @Tags workers
// @Accept json
// @Produce json
// @Param request body IDRequest true "Worker id"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} domain.ActionResult
// @Router /workers/upgrade [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleUpgradeWorker() http.HandlerFunc {
	return handleAction("upgrade_worker", func(ctx context.Context, req IDRequest) domain.ActionResult {
		return h.svc.UpgradeWorker(ctx, req.ID)
	})
}

// HandleToggleWorkerPause pauses or resumes a worker
// @Summary Pause or resume a worker
// @Tags workers
// @Accept json
// @Produce json
// @Param request body IDRequest true "Worker id"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} domain.ActionResult
// @Router /workers/pause [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleToggleWorkerPause() http.HandlerFunc {
	return handleAction("toggle_worker_pause", func(ctx context.Context, req IDRequest) domain.ActionResult {
		return h.svc.ToggleWorkerPause(ctx, req.ID)
	})
}

// HandleSave writes the live snapshot to the save store
// @Summary Save now
// @Tags save
// @Produce json
// @Success 200 {object} domain.ActionResult
// @Failure 500 {object} ErrorResponse
// @Router /save/ [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Save(r.Context(), game.TriggerManual); err != nil {
		logger.FromContext(r.Context()).Error(LogMsgManualSaveFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgSaveFailed)
		return
	}
	respondResult(w, domain.Ok(nil))
}

// HandleExport returns the live snapshot as a portable string
// @Summary Export the save
// @Description Returns the snapshot as base64 of zstd-compressed JSON
// @Tags save
// @Produce json
// @Success 200 {object} ExportResponse
// @Failure 500 {object} ErrorResponse
// @Router /save/export [get]
// @Security ApiKeyAuth
func (h *GameHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.Export(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error(LogMsgExportFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgExportFailed)
		return
	}
	respondJSON(w, http.StatusOK, ExportResponse{Data: data})
}

// HandleImport replaces the live snapshot with an exported save
// @Summary Import a save
// @Description Migrates the imported save to the current version and persists it
// @Tags save
// @Accept json
// @Produce json
// @Param request body ImportRequest true "Exported save string"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} domain.ActionResult
// @Router /save/import [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleImport() http.HandlerFunc {
	return handleAction("import", func(ctx context.Context, req ImportRequest) domain.ActionResult {
		return h.svc.Import(ctx, req.Data)
	})
}
