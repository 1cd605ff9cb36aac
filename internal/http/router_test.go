package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	authrepos "github.com/ovenline/bakehouse-backend/internal/data/repos/auth"
	catalogrepos "github.com/ovenline/bakehouse-backend/internal/data/repos/catalog"
	messagingrepos "github.com/ovenline/bakehouse-backend/internal/data/repos/messaging"
	productionrepos "github.com/ovenline/bakehouse-backend/internal/data/repos/production"
	"github.com/ovenline/bakehouse-backend/internal/data/repos/testutil"
	userrepos "github.com/ovenline/bakehouse-backend/internal/data/repos/user"
	httpH "github.com/ovenline/bakehouse-backend/internal/http/handlers"
	httpMW "github.com/ovenline/bakehouse-backend/internal/http/middleware"
	"github.com/ovenline/bakehouse-backend/internal/realtime"
	"github.com/ovenline/bakehouse-backend/internal/services"
)

func newTestRouter(tb testing.TB) *gin.Engine {
	tb.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.DB(tb)
	log := testutil.Logger(tb)
	hub := realtime.NewHub(log)

	userRepo := userrepos.NewUserRepo(db, log)
	tokenRepo := authrepos.NewUserTokenRepo(db, log)
	ingredientRepo := catalogrepos.NewIngredientRepo(db, log)
	recipeRepo := catalogrepos.NewRecipeRepo(db, log)
	scheduleRepo := productionrepos.NewScheduleRepo(db, log)
	stockRepo := productionrepos.NewStockRepo(db, log)
	checkRepo := productionrepos.NewCheckRepo(db, log)
	shortageRepo := productionrepos.NewShortageRepo(db, log)
	notificationRepo := messagingrepos.NewNotificationRepo(db, log)
	chatRepo := messagingrepos.NewChatMessageRepo(db, log)

	authSvc := services.NewAuthService(db, log, userRepo, tokenRepo, "test-secret", time.Hour, 24*time.Hour)
	checkSvc := services.NewInventoryCheckService(db, log, scheduleRepo, recipeRepo, stockRepo, checkRepo, shortageRepo, hub)
	notificationSvc := services.NewNotificationService(db, log, notificationRepo, hub)

	return NewRouter(RouterConfig{
		Log:                   log,
		AuthMiddleware:        httpMW.NewAuthMiddleware(log, authSvc),
		HealthHandler:         httpH.NewHealthHandler(),
		AuthHandler:           httpH.NewAuthHandler(authSvc),
		UserHandler:           httpH.NewUserHandler(services.NewUserService(db, log, userRepo)),
		IngredientHandler:     httpH.NewIngredientHandler(services.NewIngredientService(db, log, ingredientRepo)),
		RecipeHandler:         httpH.NewRecipeHandler(services.NewRecipeService(db, log, recipeRepo, ingredientRepo)),
		ScheduleHandler:       httpH.NewScheduleHandler(services.NewScheduleService(db, log, scheduleRepo, recipeRepo, checkRepo, shortageRepo)),
		StockHandler:          httpH.NewStockHandler(services.NewStockService(db, log, stockRepo, ingredientRepo, hub)),
		InventoryCheckHandler: httpH.NewInventoryCheckHandler(checkSvc, notificationSvc),
		NotificationHandler:   httpH.NewNotificationHandler(notificationSvc),
		ChatHandler:           httpH.NewChatHandler(services.NewChatService(db, log, chatRepo, hub)),
		RealtimeHandler:       httpH.NewRealtimeHandler(log, hub),
	})
}

func doJSON(tb testing.TB, router *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	tb.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			tb.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			tb.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, out
}

func registerAndLogin(tb testing.TB, router *gin.Engine) string {
	tb.Helper()
	w, _ := doJSON(tb, router, http.MethodPost, "/api/register", "", gin.H{
		"email":      "head.baker@ovenline.test",
		"password":   "crustneversleeps",
		"first_name": "Sam",
		"last_name":  "Leaven",
	})
	if w.Code != http.StatusCreated {
		tb.Fatalf("register status = %d, body %s", w.Code, w.Body.String())
	}
	w, out := doJSON(tb, router, http.MethodPost, "/api/login", "", gin.H{
		"email":    "head.baker@ovenline.test",
		"password": "crustneversleeps",
	})
	if w.Code != http.StatusOK {
		tb.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}
	tokens, _ := out["tokens"].(map[string]any)
	access, _ := tokens["access_token"].(string)
	if access == "" {
		tb.Fatalf("login returned no access token: %v", out)
	}
	return access
}

func TestHealthcheck(t *testing.T) {
	router := newTestRouter(t)
	w, out := doJSON(t, router, http.MethodGet, "/healthcheck", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if out["status"] != "ok" {
		t.Fatalf("body = %v", out)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)
	w, _ := doJSON(t, router, http.MethodGet, "/api/recipes", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status without token = %d, want 401", w.Code)
	}
	w, _ = doJSON(t, router, http.MethodGet, "/api/recipes", "not-a-jwt", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status with bad token = %d, want 401", w.Code)
	}
}

func TestInventoryCheckFlow(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	// Catalog
	w, out := doJSON(t, router, http.MethodPost, "/api/ingredients", token, gin.H{
		"name": "Flour", "default_unit": "GM",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create ingredient = %d, body %s", w.Code, w.Body.String())
	}
	flourID := out["ingredient"].(map[string]any)["id"].(string)

	w, out = doJSON(t, router, http.MethodPost, "/api/recipes", token, gin.H{
		"name": "Brownies",
		"ingredients": []gin.H{
			{"ingredient_id": flourID, "quantity": "200", "unit": "GM"},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create recipe = %d, body %s", w.Code, w.Body.String())
	}
	recipeID := out["recipe"].(map[string]any)["id"].(string)

	w, out = doJSON(t, router, http.MethodPost, "/api/schedules", token, gin.H{
		"week_start": "2026-03-02T00:00:00Z",
		"entries": []gin.H{
			{"recipe_id": recipeID, "batch_count": 6},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create schedule = %d, body %s", w.Code, w.Body.String())
	}
	scheduleID := out["schedule"].(map[string]any)["id"].(string)

	w, _ = doJSON(t, router, http.MethodPut, "/api/stock/"+flourID, token, gin.H{
		"quantity": "500", "unit": "GM",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("upsert stock = %d, body %s", w.Code, w.Body.String())
	}

	// Run the check: 1200 needed against 500 on hand.
	w, out = doJSON(t, router, http.MethodPost, "/api/inventory-check/run", token, gin.H{
		"scheduleId": scheduleID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("run check = %d, body %s", w.Code, w.Body.String())
	}
	result := out["result"].(map[string]any)
	check := result["check"].(map[string]any)
	if got := check["shortage_count"].(float64); got != 1 {
		t.Fatalf("shortage_count = %v, want 1", got)
	}
	shortages := result["shortages"].([]any)
	if len(shortages) != 1 {
		t.Fatalf("shortages = %d, want 1", len(shortages))
	}
	shortage := shortages[0].(map[string]any)
	if shortage["resolution_status"] != "PENDING" {
		t.Fatalf("resolution_status = %v, want PENDING", shortage["resolution_status"])
	}
	display := shortage["required_display"].(map[string]any)
	if display["value"] != "1.20" || display["unit"] != "KG" {
		t.Fatalf("required display = %v, want 1.20 KG", display)
	}

	// The run with shortages left a notification for the caller.
	w, out = doJSON(t, router, http.MethodGet, "/api/notifications", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list notifications = %d, body %s", w.Code, w.Body.String())
	}
	if rows := out["notifications"].([]any); len(rows) != 1 {
		t.Fatalf("notifications after run = %d, want 1", len(rows))
	}

	// Latest check readback.
	w, out = doJSON(t, router, http.MethodGet, "/api/inventory-check/"+scheduleID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get latest = %d, body %s", w.Code, w.Body.String())
	}
	latest := out["result"].(map[string]any)["check"].(map[string]any)
	if latest["id"] != check["id"] {
		t.Fatalf("latest check id = %v, want %v", latest["id"], check["id"])
	}

	// Resolve the shortage.
	shortageID := shortage["id"].(string)
	w, _ = doJSON(t, router, http.MethodPost, "/api/inventory-check/shortages/"+shortageID+"/resolve", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("resolve shortage = %d, body %s", w.Code, w.Body.String())
	}

	// Delete the history.
	w, out = doJSON(t, router, http.MethodDelete, "/api/inventory-check/"+scheduleID+"/delete", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete checks = %d, body %s", w.Code, w.Body.String())
	}
	deleted := out["deleted"].(map[string]any)
	if deleted["checks"].(float64) != 1 || deleted["shortages"].(float64) != 1 {
		t.Fatalf("deleted = %v, want 1 check / 1 shortage", deleted)
	}

	w, _ = doJSON(t, router, http.MethodGet, "/api/inventory-check/"+scheduleID, token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get latest after delete = %d, want 404", w.Code)
	}
}

func TestChatAndNotifications(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	w, out := doJSON(t, router, http.MethodPost, "/api/chat/production-floor/messages", token, gin.H{
		"body": "Oven two is back online.",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("post chat = %d, body %s", w.Code, w.Body.String())
	}
	if out["message"].(map[string]any)["body"] != "Oven two is back online." {
		t.Fatalf("chat body mismatch: %v", out)
	}

	w, out = doJSON(t, router, http.MethodGet, "/api/chat/production-floor/messages", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("chat history = %d, body %s", w.Code, w.Body.String())
	}
	if msgs := out["messages"].([]any); len(msgs) != 1 {
		t.Fatalf("history = %d messages, want 1", len(msgs))
	}

	w, out = doJSON(t, router, http.MethodGet, "/api/notifications", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list notifications = %d, body %s", w.Code, w.Body.String())
	}
	if rows := out["notifications"].([]any); len(rows) != 0 {
		t.Fatalf("notifications = %d, want 0", len(rows))
	}
}

func TestGetMe(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	w, out := doJSON(t, router, http.MethodGet, "/api/user", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get me = %d, body %s", w.Code, w.Body.String())
	}
	user := out["user"].(map[string]any)
	if user["email"] != "head.baker@ovenline.test" {
		t.Fatalf("email = %v", user["email"])
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash leaked in response: %v", user)
	}
}
