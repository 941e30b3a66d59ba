package http

import (
	"net/http"
	"strconv"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server exposes the job order use cases over HTTP.
type Server struct {
	// Command handlers
	createJobOrder commands.CreateJobOrderCommandHandler
	updateJobOrder commands.UpdateJobOrderCommandHandler
	updateStatus   commands.UpdateJobOrderStatusCommandHandler
	settleDelivery commands.SettleJobOrderDeliveryCommandHandler
	toggleBlock    commands.ToggleJobOrderBlockCommandHandler
	deleteJobOrder commands.DeleteJobOrderCommandHandler
	createCustomer commands.CreateCustomerCommandHandler
	createMaterial commands.CreateMaterialCommandHandler
	createReceipt  commands.CreateReceiptCommandHandler
	createSale     commands.CreateSaleCommandHandler

	// Query handlers
	getJobOrder      queries.GetJobOrderQueryHandler
	listJobOrders    queries.ListJobOrdersQueryHandler
	recentJobOrders  queries.GetRecentJobOrdersQueryHandler
	jobOrderStats    queries.GetJobOrderStatsQueryHandler
	jobOrderItems    queries.GetJobOrderItemsQueryHandler
	jobOrderMeasures queries.GetJobOrderMeasurementsQueryHandler
}

// CommandHandlers groups the write side of the API.
type CommandHandlers struct {
	CreateJobOrder commands.CreateJobOrderCommandHandler
	UpdateJobOrder commands.UpdateJobOrderCommandHandler
	UpdateStatus   commands.UpdateJobOrderStatusCommandHandler
	SettleDelivery commands.SettleJobOrderDeliveryCommandHandler
	ToggleBlock    commands.ToggleJobOrderBlockCommandHandler
	DeleteJobOrder commands.DeleteJobOrderCommandHandler
	CreateCustomer commands.CreateCustomerCommandHandler
	CreateMaterial commands.CreateMaterialCommandHandler
	CreateReceipt  commands.CreateReceiptCommandHandler
	CreateSale     commands.CreateSaleCommandHandler
}

// QueryHandlers groups the read side of the API.
type QueryHandlers struct {
	GetJobOrder          queries.GetJobOrderQueryHandler
	ListJobOrders        queries.ListJobOrdersQueryHandler
	RecentJobOrders      queries.GetRecentJobOrdersQueryHandler
	JobOrderStats        queries.GetJobOrderStatsQueryHandler
	JobOrderItems        queries.GetJobOrderItemsQueryHandler
	JobOrderMeasurements queries.GetJobOrderMeasurementsQueryHandler
}

func NewServer(c CommandHandlers, q QueryHandlers) *Server {
	return &Server{
		createJobOrder:   c.CreateJobOrder,
		updateJobOrder:   c.UpdateJobOrder,
		updateStatus:     c.UpdateStatus,
		settleDelivery:   c.SettleDelivery,
		toggleBlock:      c.ToggleBlock,
		deleteJobOrder:   c.DeleteJobOrder,
		createCustomer:   c.CreateCustomer,
		createMaterial:   c.CreateMaterial,
		createReceipt:    c.CreateReceipt,
		createSale:       c.CreateSale,
		getJobOrder:      q.GetJobOrder,
		listJobOrders:    q.ListJobOrders,
		recentJobOrders:  q.RecentJobOrders,
		jobOrderStats:    q.JobOrderStats,
		jobOrderItems:    q.JobOrderItems,
		jobOrderMeasures: q.JobOrderMeasurements,
	}
}

// Register mounts the API under /api/v1 together with /health and the
// Swagger UI.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	orders := api.Group("/job-orders")
	orders.POST("", s.CreateJobOrder)
	orders.GET("", s.ListJobOrders)
	orders.GET("/stats", s.GetJobOrderStats)
	orders.GET("/recent", s.GetRecentJobOrders)
	orders.GET("/deliveries", s.ListDeliveries)
	orders.GET("/:id", s.GetJobOrder)
	orders.PUT("/:id", s.UpdateJobOrder)
	orders.PATCH("/:id", s.UpdateJobOrder)
	orders.DELETE("/:id", s.DeleteJobOrder)
	orders.POST("/:id/status", s.UpdateJobOrderStatus)
	orders.POST("/:id/delivery", s.SettleJobOrderDelivery)
	orders.POST("/:id/toggle-block", s.ToggleJobOrderBlock)
	orders.GET("/:id/items", s.GetJobOrderItems)
	orders.GET("/:id/measurements", s.GetJobOrderMeasurements)

	api.POST("/customers", s.CreateCustomer)
	api.POST("/materials", s.CreateMaterial)
	api.POST("/receipts", s.CreateReceipt)
	api.POST("/sales", s.CreateSale)
}

// CreateJobOrder handles POST /api/v1/job-orders.
func (s *Server) CreateJobOrder(c echo.Context) error {
	var req CreateJobOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := req.command()
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	id, err := s.createJobOrder.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	return s.respondWithJobOrder(c, http.StatusCreated, id)
}

// GetJobOrder handles GET /api/v1/job-orders/:id.
func (s *Server) GetJobOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return s.respondWithJobOrder(c, http.StatusOK, id)
}

// UpdateJobOrder handles PUT and PATCH /api/v1/job-orders/:id.
func (s *Server) UpdateJobOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req UpdateJobOrderRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := req.command(id)
	if err != nil {
		return err
	}
	if err = s.updateJobOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondWithJobOrder(c, http.StatusOK, id)
}

// DeleteJobOrder handles DELETE /api/v1/job-orders/:id.
func (s *Server) DeleteJobOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteJobOrderCommand(id)
	if err != nil {
		return err
	}
	if err = s.deleteJobOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateJobOrderStatus handles POST /api/v1/job-orders/:id/status.
func (s *Server) UpdateJobOrderStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req UpdateStatusRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateJobOrderStatusCommand(id, req.Status)
	if err != nil {
		return err
	}
	if err = s.updateStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondWithJobOrder(c, http.StatusOK, id)
}

// SettleJobOrderDelivery handles POST /api/v1/job-orders/:id/delivery.
func (s *Server) SettleJobOrderDelivery(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req SettleDeliveryRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSettleJobOrderDeliveryCommand(id, req.received(), status(req.Status))
	if err != nil {
		return err
	}
	if err = s.settleDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondWithJobOrder(c, http.StatusOK, id)
}

// ToggleJobOrderBlock handles POST /api/v1/job-orders/:id/toggle-block.
func (s *Server) ToggleJobOrderBlock(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewToggleJobOrderBlockCommand(id)
	if err != nil {
		return err
	}
	blocked, err := s.toggleBlock.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ToggleBlockResponse{ID: id, IsBlocked: blocked})
}

// ListJobOrders handles GET /api/v1/job-orders. The date range applies to
// the creation date.
func (s *Server) ListJobOrders(c echo.Context) error {
	return s.list(c, queries.ByCreatedAt)
}

// ListDeliveries handles GET /api/v1/job-orders/deliveries. The date range
// applies to the delivery date.
func (s *Server) ListDeliveries(c echo.Context) error {
	return s.list(c, queries.ByDeliveryDate)
}

func (s *Server) list(c echo.Context, field queries.DateField) error {
	query := queries.NewListJobOrdersQuery(queries.ParseFilter(field, filterParams(c)))
	views, err := s.listJobOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newJobOrderResponses(views))
}

// GetJobOrderStats handles GET /api/v1/job-orders/stats.
func (s *Server) GetJobOrderStats(c echo.Context) error {
	query := queries.NewGetJobOrderStatsQuery(queries.ParseFilter(queries.ByCreatedAt, filterParams(c)))
	stats, err := s.jobOrderStats.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newJobOrderStatsResponse(stats))
}

// GetRecentJobOrders handles GET /api/v1/job-orders/recent.
func (s *Server) GetRecentJobOrders(c echo.Context) error {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil {
		limit = queries.DefaultRecentLimit
	}
	views, err := s.recentJobOrders.Handle(c.Request().Context(), queries.NewGetRecentJobOrdersQuery(limit))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newJobOrderResponses(views))
}

// GetJobOrderItems handles GET /api/v1/job-orders/:id/items.
func (s *Server) GetJobOrderItems(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetJobOrderItemsQuery(id)
	if err != nil {
		return err
	}
	items, err := s.jobOrderItems.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newItemResponses(items))
}

// GetJobOrderMeasurements handles GET /api/v1/job-orders/:id/measurements.
func (s *Server) GetJobOrderMeasurements(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetJobOrderMeasurementsQuery(id)
	if err != nil {
		return err
	}
	measurements, err := s.jobOrderMeasures.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newMeasurementResponses(measurements))
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(c echo.Context) error {
	var req CustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewCreateCustomerCommand(req.data())
	if err != nil {
		return err
	}
	created, err := s.createCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newCustomerResponse(created))
}

// CreateMaterial handles POST /api/v1/materials.
func (s *Server) CreateMaterial(c echo.Context) error {
	var req CreateMaterialRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewCreateMaterialCommand(req.SKU, req.Name, req.dimensions(), req.Price)
	if err != nil {
		return err
	}
	created, err := s.createMaterial.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newMaterialResponse(created))
}

// CreateReceipt handles POST /api/v1/receipts.
func (s *Server) CreateReceipt(c echo.Context) error {
	var req CreateReceiptRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewCreateReceiptCommand(req.JobOrderID, req.ReceiptDate.timePtr(), req.Amount, req.Remarks)
	if err != nil {
		return err
	}
	created, err := s.createReceipt.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newReceiptResponse(created))
}

// CreateSale handles POST /api/v1/sales.
func (s *Server) CreateSale(c echo.Context) error {
	var req CreateSaleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewCreateSaleCommand(
		req.CustomerName, req.Amount, req.TotalAmount,
		req.PaymentMethod, req.Status, req.Notes, req.SaleDate.timePtr(),
	)
	if err != nil {
		return err
	}
	created, err := s.createSale.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newSaleResponse(created))
}

func (s *Server) respondWithJobOrder(c echo.Context, code int, id int64) error {
	query, err := queries.NewGetJobOrderQuery(id)
	if err != nil {
		return err
	}
	view, err := s.getJobOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(code, newJobOrderResponse(view))
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.Validate(req)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

func filterParams(c echo.Context) queries.FilterParams {
	return queries.FilterParams{
		FromDate:      c.QueryParam("from_date"),
		ToDate:        c.QueryParam("to_date"),
		Status:        c.QueryParam("status"),
		CustomerID:    c.QueryParam("customer_id"),
		PaymentMethod: c.QueryParam("payment_method"),
		IsBlocked:     c.QueryParam("is_blocked"),
		Search:        c.QueryParam("search"),
		Limit:         c.QueryParam("limit"),
	}
}
