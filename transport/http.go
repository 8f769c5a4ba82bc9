package transport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	branchapp "github.com/ramadhanif/bakery-inventory/application/branch"
	inventoryapp "github.com/ramadhanif/bakery-inventory/application/inventory"
	itemapp "github.com/ramadhanif/bakery-inventory/application/item"
	reportapp "github.com/ramadhanif/bakery-inventory/application/report"
	transferapp "github.com/ramadhanif/bakery-inventory/application/transfer"
	userapp "github.com/ramadhanif/bakery-inventory/application/user"
	"github.com/ramadhanif/bakery-inventory/constant"
	"github.com/ramadhanif/bakery-inventory/model"
	"github.com/ramadhanif/bakery-inventory/thirdparty/rabbitmq"
	"github.com/ramadhanif/bakery-inventory/utils/errors"
	"github.com/ramadhanif/bakery-inventory/utils/logger"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type RestHandler struct {
	UserApp      userapp.UserApp
	ItemApp      itemapp.ItemApp
	BranchApp    branchapp.BranchApp
	InventoryApp inventoryapp.InventoryApp
	TransferApp  transferapp.TransferApp
	ReportApp    reportapp.ReportApp
}

func NewTransport(rh *RestHandler, internalAPIKey string) http.Handler {
	router := mux.NewRouter()

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	router.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Session (token required, like everything below)
	router.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)

	// Items
	router.HandleFunc("/items/categories", rh.ItemCategories).Methods(http.MethodGet)
	router.HandleFunc("/items/reset-stock", rh.ResetStocks).Methods(http.MethodPost)
	router.HandleFunc("/items", rh.CreateItem).Methods(http.MethodPost)
	router.HandleFunc("/items", rh.ListItems).Methods(http.MethodGet)
	router.HandleFunc("/items/{id:[0-9]+}", rh.GetItem).Methods(http.MethodGet)
	router.HandleFunc("/items/{id:[0-9]+}", rh.UpdateItem).Methods(http.MethodPut)
	router.HandleFunc("/items/{id:[0-9]+}", rh.DeleteItem).Methods(http.MethodDelete)

	// Branches
	router.HandleFunc("/branches/cities", rh.BranchCities).Methods(http.MethodGet)
	router.HandleFunc("/branches", rh.CreateBranch).Methods(http.MethodPost)
	router.HandleFunc("/branches", rh.ListBranches).Methods(http.MethodGet)
	router.HandleFunc("/branches/{id:[0-9]+}", rh.GetBranch).Methods(http.MethodGet)
	router.HandleFunc("/branches/{id:[0-9]+}", rh.UpdateBranch).Methods(http.MethodPut)
	router.HandleFunc("/branches/{id:[0-9]+}", rh.DeleteBranch).Methods(http.MethodDelete)
	router.HandleFunc("/branches/{id:[0-9]+}/status", rh.UpdateBranchStatus).Methods(http.MethodPatch)

	// Inventory
	router.HandleFunc("/inventory/main", rh.MainInventory).Methods(http.MethodGet)
	router.HandleFunc("/inventory/branch/{branchId:[0-9]+}", rh.BranchInventory).Methods(http.MethodGet)
	router.HandleFunc("/inventory/update-stock", rh.UpdateStock).Methods(http.MethodPatch)
	router.HandleFunc("/inventory/alerts", rh.InventoryAlerts).Methods(http.MethodGet)
	router.HandleFunc("/inventory/summary", rh.InventorySummary).Methods(http.MethodGet)

	// Transfers
	router.HandleFunc("/transfers", rh.CentralTransfer).Methods(http.MethodPost)
	router.HandleFunc("/transfers/branch", rh.BranchTransfer).Methods(http.MethodPost)
	router.HandleFunc("/transfers/history", rh.TransferHistory).Methods(http.MethodGet)
	router.HandleFunc("/transfers/reconcile/{branchId:[0-9]+}", rh.Reconcile).Methods(http.MethodGet)

	// Reports
	router.HandleFunc("/reports/overview", rh.ReportOverview).Methods(http.MethodGet)

	// Internal service-to-service routes
	internal := router.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/alerts/notify", rh.NotifyAlert).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(rh.UserApp))

	return router
}

func pathID(r *http.Request, key string) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)[key], 10, 64)
}

// Register handler
// @Summary Register user
// @Description Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout user
// @Description Revoke the session behind the presented JWT
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.CustomError
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth := r.Header.Get("Authorization")
	token := strings.TrimPrefix(auth, "Bearer ")
	if token == "" || token == auth {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.UserApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{"logged_out": true})
}

// CreateItem handler
// @Summary Create item
// @Description Register a new bakery item in the catalog
// @Tags Items
// @Accept json
// @Produce json
// @Param request body model.CreateItemRequest true "Create Item Request"
// @Success 201 {object} model.ItemEntity
// @Failure 400 {object} errors.CustomError
// @Router /items [post]
func (s *RestHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req model.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ItemApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// ListItems handler
// @Summary List items
// @Description List catalog items with search, category and active filters
// @Tags Items
// @Produce json
// @Param search query string false "Search in code and name"
// @Param category query string false "Category filter"
// @Param active query bool false "Active filter"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} model.ItemListResponse
// @Router /items [get]
func (s *RestHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	filter := itemFilterFromQuery(r)
	res, err := s.ItemApp.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func itemFilterFromQuery(r *http.Request) *model.ItemFilter {
	q := r.URL.Query()
	filter := &model.ItemFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
	}
	if v := q.Get("active"); v != "" {
		active := v == "true" || v == "1"
		filter.Active = &active
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.PerPage, _ = strconv.Atoi(q.Get("per_page"))
	return filter
}

// GetItem handler
// @Summary Get item
// @Tags Items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} model.ItemEntity
// @Failure 404 {object} errors.CustomError
// @Router /items/{id} [get]
func (s *RestHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ItemApp.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateItem handler
// @Summary Update item
// @Description Partially update an item; omitted fields are left unchanged
// @Tags Items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body model.UpdateItemRequest true "Update Item Request"
// @Success 200 {object} model.ItemEntity
// @Failure 404 {object} errors.CustomError
// @Router /items/{id} [put]
func (s *RestHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ItemApp.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteItem handler
// @Summary Delete item
// @Tags Items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} errors.CustomError
// @Router /items/{id} [delete]
func (s *RestHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ItemApp.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]bool{"deleted": true})
}

// ItemCategories handler
// @Summary List item categories
// @Tags Items
// @Produce json
// @Success 200 {array} string
// @Router /items/categories [get]
func (s *RestHandler) ItemCategories(w http.ResponseWriter, r *http.Request) {
	res, err := s.ItemApp.Categories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ResetStocks handler
// @Summary Reset central stocks
// @Description Zero the central bakery stock counter on every item
// @Tags Items
// @Produce json
// @Success 200 {object} model.ResetStocksResponse
// @Router /items/reset-stock [post]
func (s *RestHandler) ResetStocks(w http.ResponseWriter, r *http.Request) {
	res, err := s.ItemApp.ResetAllStocks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateBranch handler
// @Summary Create branch
// @Description Register a branch; the code is generated when omitted
// @Tags Branches
// @Accept json
// @Produce json
// @Param request body model.CreateBranchRequest true "Create Branch Request"
// @Success 201 {object} model.BranchEntity
// @Failure 400 {object} errors.CustomError
// @Router /branches [post]
func (s *RestHandler) CreateBranch(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BranchApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// ListBranches handler
// @Summary List branches
// @Tags Branches
// @Produce json
// @Param search query string false "Search in code and name"
// @Param status query string false "Status filter"
// @Param city query string false "City filter"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} model.BranchListResponse
// @Router /branches [get]
func (s *RestHandler) ListBranches(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &model.BranchFilter{
		Search: q.Get("search"),
		Status: q.Get("status"),
		City:   q.Get("city"),
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.PerPage, _ = strconv.Atoi(q.Get("per_page"))

	res, err := s.BranchApp.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetBranch handler
// @Summary Get branch
// @Tags Branches
// @Produce json
// @Param id path int true "Branch ID"
// @Success 200 {object} model.BranchEntity
// @Failure 404 {object} errors.CustomError
// @Router /branches/{id} [get]
func (s *RestHandler) GetBranch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BranchApp.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateBranch handler
// @Summary Update branch
// @Tags Branches
// @Accept json
// @Produce json
// @Param id path int true "Branch ID"
// @Param request body model.UpdateBranchRequest true "Update Branch Request"
// @Success 200 {object} model.BranchEntity
// @Failure 404 {object} errors.CustomError
// @Router /branches/{id} [put]
func (s *RestHandler) UpdateBranch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BranchApp.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteBranch handler
// @Summary Delete branch
// @Tags Branches
// @Produce json
// @Param id path int true "Branch ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} errors.CustomError
// @Router /branches/{id} [delete]
func (s *RestHandler) DeleteBranch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.BranchApp.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]bool{"deleted": true})
}

// UpdateBranchStatus handler
// @Summary Update branch status
// @Description Switch a branch between active, inactive and maintenance
// @Tags Branches
// @Accept json
// @Produce json
// @Param id path int true "Branch ID"
// @Param request body model.UpdateBranchStatusRequest true "Status Request"
// @Success 200 {object} model.BranchEntity
// @Failure 404 {object} errors.CustomError
// @Router /branches/{id}/status [patch]
func (s *RestHandler) UpdateBranchStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateBranchStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BranchApp.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// BranchCities handler
// @Summary List branch cities
// @Tags Branches
// @Produce json
// @Success 200 {array} string
// @Router /branches/cities [get]
func (s *RestHandler) BranchCities(w http.ResponseWriter, r *http.Request) {
	res, err := s.BranchApp.Cities(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// MainInventory handler
// @Summary Central bakery inventory
// @Description Item stock held at the central bakery
// @Tags Inventory
// @Produce json
// @Param search query string false "Search in code and name"
// @Param category query string false "Category filter"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} model.ItemListResponse
// @Router /inventory/main [get]
func (s *RestHandler) MainInventory(w http.ResponseWriter, r *http.Request) {
	res, err := s.InventoryApp.GetMainInventory(r.Context(), itemFilterFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// BranchInventory handler
// @Summary Branch inventory
// @Tags Inventory
// @Produce json
// @Param branchId path int true "Branch ID"
// @Param low_stock query bool false "Only rows at or below the reorder point"
// @Success 200 {array} model.InventoryRow
// @Failure 404 {object} errors.CustomError
// @Router /inventory/branch/{branchId} [get]
func (s *RestHandler) BranchInventory(w http.ResponseWriter, r *http.Request) {
	branchID, err := pathID(r, "branchId")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	lowStockOnly := r.URL.Query().Get("low_stock") == "true"

	res, err := s.InventoryApp.GetBranchInventory(r.Context(), branchID, lowStockOnly)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateStock handler
// @Summary Update branch stock
// @Description Apply an add, set or subtract operation to a ledger row
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body model.UpdateStockRequest true "Update Stock Request"
// @Success 200 {object} model.InventoryRow
// @Failure 400 {object} errors.CustomError
// @Router /inventory/update-stock [patch]
func (s *RestHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.UpdateStock(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// InventoryAlerts handler
// @Summary Stock alerts
// @Description Ledger rows partitioned into out-of-stock, low and overstocked
// @Tags Inventory
// @Produce json
// @Param branch_id query int false "Scope to one branch"
// @Success 200 {object} model.InventoryAlerts
// @Router /inventory/alerts [get]
func (s *RestHandler) InventoryAlerts(w http.ResponseWriter, r *http.Request) {
	branchID, _ := strconv.ParseUint(r.URL.Query().Get("branch_id"), 10, 64)

	res, err := s.InventoryApp.GetAlerts(r.Context(), branchID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// InventorySummary handler
// @Summary Inventory summary
// @Tags Inventory
// @Produce json
// @Success 200 {object} model.InventorySummaryResponse
// @Router /inventory/summary [get]
func (s *RestHandler) InventorySummary(w http.ResponseWriter, r *http.Request) {
	res, err := s.InventoryApp.GetSummary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CentralTransfer handler
// @Summary Transfer from central bakery
// @Description Move stock from the central bakery to a branch, addressed by codes
// @Tags Transfers
// @Accept json
// @Produce json
// @Param request body model.CentralTransferRequest true "Central Transfer Request"
// @Success 201 {object} model.TransferRow
// @Failure 400 {object} errors.CustomError
// @Router /transfers [post]
func (s *RestHandler) CentralTransfer(w http.ResponseWriter, r *http.Request) {
	var req model.CentralTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.TransferApp.TransferByCode(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// BranchTransfer handler
// @Summary Transfer between branches
// @Tags Transfers
// @Accept json
// @Produce json
// @Param request body model.BranchTransferRequest true "Branch Transfer Request"
// @Success 201 {object} model.TransferRow
// @Failure 400 {object} errors.CustomError
// @Router /transfers/branch [post]
func (s *RestHandler) BranchTransfer(w http.ResponseWriter, r *http.Request) {
	var req model.BranchTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	fromBranchID := req.FromBranchID
	res, err := s.TransferApp.Transfer(r.Context(), &model.TransferRequest{
		ItemID:       req.ItemID,
		FromBranchID: &fromBranchID,
		ToBranchID:   req.ToBranchID,
		Quantity:     req.Quantity,
		Notes:        req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// TransferHistory handler
// @Summary Transfer history
// @Tags Transfers
// @Produce json
// @Param item_id query int false "Item filter"
// @Param branch_id query int false "Branch filter, either side"
// @Param status query string false "Status filter"
// @Success 200 {array} model.TransferRow
// @Router /transfers/history [get]
func (s *RestHandler) TransferHistory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &model.TransferHistoryFilter{Status: q.Get("status")}
	filter.ItemID, _ = strconv.ParseUint(q.Get("item_id"), 10, 64)
	filter.BranchID, _ = strconv.ParseUint(q.Get("branch_id"), 10, 64)

	res, err := s.TransferApp.History(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Reconcile handler
// @Summary Reconcile branch ledger
// @Description Replay the delivered transfer log against the branch ledger
// @Tags Transfers
// @Produce json
// @Param branchId path int true "Branch ID"
// @Success 200 {object} model.ReconciliationReport
// @Failure 404 {object} errors.CustomError
// @Router /transfers/reconcile/{branchId} [get]
func (s *RestHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	branchID, err := pathID(r, "branchId")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.TransferApp.Reconcile(r.Context(), branchID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ReportOverview handler
// @Summary Dashboard overview
// @Tags Reports
// @Produce json
// @Success 200 {object} model.DashboardResponse
// @Router /reports/overview [get]
func (s *RestHandler) ReportOverview(w http.ResponseWriter, r *http.Request) {
	res, err := s.ReportApp.Overview(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// NotifyAlert receives forwarded stock alerts from the consumer worker. For
// now it lands them in the structured log, which is where the alerting runbook
// reads from.
func (s *RestHandler) NotifyAlert(w http.ResponseWriter, r *http.Request) {
	var msg rabbitmq.StockAlertMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	logger.Warn("stock alert",
		zap.Uint64("item_id", msg.ItemID),
		zap.String("item_code", msg.ItemCode),
		zap.Uint64("branch_id", msg.BranchID),
		zap.Int64("current_stock", msg.CurrentStock),
		zap.Int64("reorder_point", msg.ReorderPoint),
		zap.String("status", msg.Status),
	)
	writeSuccess(w, map[string]bool{"received": true})
}
