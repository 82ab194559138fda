// User API — a simple HTTP service for managing users.
package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/example/order-demo/go/pkg/config"
	"github.com/example/order-demo/go/pkg/httputil"
	"github.com/example/order-demo/go/pkg/models"
	"github.com/example/order-demo/go/pkg/shoputil"
)

var (
	errInvalidEmail = errors.New("invalid email")
	errDuplicateID  = errors.New("user id already exists")
)

var (
	mu    sync.RWMutex
	users = []models.User{
		models.NewUser(1, "Alice", "alice@example.com"),
		models.NewUser(2, "Bob_test", "bob@example.com"),
	}
)

type userView struct {
	models.User
	Display string `json:"display"`
	Slug    string `json:"slug"`
}

func viewOf(u models.User) userView {
	return userView{User: u, Display: u.FullDisplay(), Slug: shoputil.Slugify(u.Name)}
}

func handleListUsers(w http.ResponseWriter, r *http.Request) {
	mu.RLock()
	defer mu.RUnlock()

	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, viewOf(u))
	}
	httputil.JSONResponse(w, http.StatusOK, views)
}

func handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID        int       `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		CreatedAt time.Time `json:"created_at"`
	}
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if !shoputil.ValidateEmail(req.Email) {
		httputil.ErrorResponse(w, http.StatusBadRequest, fmt.Errorf("%w: %q", errInvalidEmail, req.Email).Error())
		return
	}

	user := models.NewUserAt(req.ID, req.Name, req.Email, req.CreatedAt)
	mu.Lock()
	for _, u := range users {
		if u.ID == user.ID {
			mu.Unlock()
			httputil.ErrorResponse(w, http.StatusConflict, fmt.Errorf("%w: %d", errDuplicateID, user.ID).Error())
			return
		}
	}
	users = append(users, user)
	mu.Unlock()
	httputil.JSONResponse(w, http.StatusCreated, viewOf(user))
}

func newMux() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", handleListUsers)
	mux.HandleFunc("POST /users", handleCreateUser)
	return httputil.WithRequestID(mux)
}

func main() {
	cfg, err := config.Load("USERAPI", config.ServiceConfig{Name: "userapi", Addr: ":8081"})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(cfg.Banner())
	log.Fatal(http.ListenAndServe(cfg.Addr, newMux()))
}
