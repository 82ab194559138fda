// Order API — a simple HTTP service for pricing and tracking orders.
package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/example/order-demo/go/pkg/config"
	"github.com/example/order-demo/go/pkg/httputil"
	"github.com/example/order-demo/go/pkg/models"
	"github.com/example/order-demo/go/pkg/orders"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	errMissingUser   = errors.New("order has no user")
	errMissingStatus = errors.New("status is required")
	errDuplicateID   = errors.New("order id already exists")
)

var (
	mu        sync.RWMutex
	orderList = []models.Order{
		models.NewOrder(1, models.NewUser(1, "Alice", "alice@example.com"), []models.Product{
			models.NewProduct(101, "Widget", decimal.RequireFromString("29.99")),
		}),
	}
)

type orderView struct {
	models.Order
	Total decimal.Decimal `json:"total"`
}

type productRequest struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	InStock     *bool           `json:"in_stock"`
}

type createOrderRequest struct {
	ID   int `json:"id"`
	User *struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
	Products []productRequest `json:"products"`
}

type createOrderResponse struct {
	ReceiptID string         `json:"receipt_id"`
	Order     orderView      `json:"order"`
	Summary   orders.Summary `json:"summary"`
}

func viewOf(o models.Order) orderView {
	return orderView{Order: o, Total: o.Total()}
}

func handleListOrders(w http.ResponseWriter, r *http.Request) {
	mu.RLock()
	defer mu.RUnlock()

	views := make([]orderView, 0, len(orderList))
	for _, o := range orderList {
		views = append(views, viewOf(o))
	}
	httputil.JSONResponse(w, http.StatusOK, views)
}

func handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.User == nil {
		httputil.ErrorResponse(w, http.StatusBadRequest, errMissingUser.Error())
		return
	}

	user := models.NewUser(req.User.ID, req.User.Name, req.User.Email)
	products := make([]models.Product, 0, len(req.Products))
	for _, p := range req.Products {
		product := models.NewProduct(p.ID, p.Name, p.Price)
		product.Description = p.Description
		if p.InStock != nil {
			product.InStock = *p.InStock
		}
		products = append(products, product)
	}
	order := models.NewOrder(req.ID, user, products)

	mu.Lock()
	for _, o := range orderList {
		if o.ID == order.ID {
			mu.Unlock()
			httputil.ErrorResponse(w, http.StatusConflict, fmt.Errorf("%w: %d", errDuplicateID, order.ID).Error())
			return
		}
	}
	orderList = append(orderList, order)
	mu.Unlock()

	httputil.JSONResponse(w, http.StatusCreated, createOrderResponse{
		ReceiptID: uuid.NewString(),
		Order:     viewOf(order),
		Summary:   orders.ProcessOrder(user, products),
	})
}

func handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httputil.ErrorResponse(w, http.StatusBadRequest, "invalid order id")
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Status == "" {
		httputil.ErrorResponse(w, http.StatusBadRequest, errMissingStatus.Error())
		return
	}

	mu.Lock()
	defer mu.Unlock()
	for i := range orderList {
		if orderList[i].ID == id {
			orderList[i].Status = req.Status
			httputil.JSONResponse(w, http.StatusOK, viewOf(orderList[i]))
			return
		}
	}
	httputil.ErrorResponse(w, http.StatusNotFound, "order not found")
}

func newMux() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /orders", handleListOrders)
	mux.HandleFunc("POST /orders", handleCreateOrder)
	mux.HandleFunc("PATCH /orders/{id}/status", handleUpdateStatus)
	return httputil.WithRequestID(mux)
}

func main() {
	cfg, err := config.Load("ORDERAPI", config.ServiceConfig{Name: "orderapi", Addr: ":8082"})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(cfg.Banner())
	log.Fatal(http.ListenAndServe(cfg.Addr, newMux()))
}
