package router

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"tasktrack/config"
	httpmiddleware "tasktrack/internal/delivery/http/middleware"
	"tasktrack/internal/delivery/http/router/handler"
	"tasktrack/internal/delivery/http/validator"
	"tasktrack/internal/domain/entity"
	"tasktrack/internal/domain/repository"
	infraauth "tasktrack/internal/infra/auth"
	usecaseimpl "tasktrack/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryUserRepository is an in-memory credential store with the same
// uniqueness behavior as the database-backed one.
type memoryUserRepository struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]*entity.User)}
}

func (r *memoryUserRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	clone := *user

	return &clone, nil
}

func (r *memoryUserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return repository.ErrDuplicateUsername
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	clone := *user
	r.users[user.Username] = &clone

	return nil
}

// memoryTaskRepository is an in-memory task store scoped by owner.
type memoryTaskRepository struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*entity.Task
}

func newMemoryTaskRepository() *memoryTaskRepository {
	return &memoryTaskRepository{tasks: make(map[uuid.UUID]*entity.Task)}
}

func (r *memoryTaskRepository) Create(_ context.Context, task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	clone := *task
	r.tasks[task.ID] = &clone

	return nil
}

func (r *memoryTaskRepository) ListByOwner(_ context.Context, owner string) ([]*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var tasks []*entity.Task
	for _, task := range r.tasks {
		if task.Owner == owner {
			clone := *task
			tasks = append(tasks, &clone)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].CreatedAt.Before(tasks[j].CreatedAt) })

	return tasks, nil
}

func (r *memoryTaskRepository) FindByID(_ context.Context, id uuid.UUID, owner string) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok || task.Owner != owner {
		return nil, repository.ErrTaskNotFound
	}

	clone := *task

	return &clone, nil
}

func (r *memoryTaskRepository) Update(_ context.Context, task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tasks[task.ID]
	if !ok || existing.Owner != task.Owner {
		return repository.ErrTaskNotFound
	}

	existing.Title = task.Title
	existing.Description = task.Description
	existing.Completed = task.Completed
	existing.UpdatedAt = time.Now()

	return nil
}

func (r *memoryTaskRepository) Delete(_ context.Context, id uuid.UUID, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok || task.Owner != owner {
		return repository.ErrTaskNotFound
	}
	delete(r.tasks, id)

	return nil
}

// memoryTransactionManager runs the unit of work directly against the
// in-memory repositories.
type memoryTransactionManager struct {
	userRepo repository.UserRepository
	taskRepo repository.TaskRepository
}

func (m *memoryTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m *memoryTransactionManager) UserRepo() repository.UserRepository { return m.userRepo }

func (m *memoryTransactionManager) TaskRepo() repository.TaskRepository { return m.taskRepo }

// newTestServer wires the full HTTP stack against in-memory storage.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "integration-test-secret"},
		Auth:      &config.AuthConfig{BcryptCost: bcrypt.MinCost},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenSvc, err := infraauth.NewJWTService(cfg)
	require.NoError(t, err)
	hasher := infraauth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)

	userRepo := newMemoryUserRepository()
	taskRepo := newMemoryTaskRepository()
	txManager := &memoryTransactionManager{userRepo: userRepo, taskRepo: taskRepo}

	authUsecase := usecaseimpl.NewAuthService(usecaseimpl.AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Config:       cfg,
		Logger:       logger,
	})
	taskUsecase := usecaseimpl.NewTaskService(usecaseimpl.TaskServiceParams{
		TaskRepo: taskRepo,
		Logger:   logger,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		AuthHandler:    handler.NewAuthHandler(authUsecase, logger),
		TaskHandler:    handler.NewTaskHandler(taskUsecase, logger),
		AuthMiddleware: httpmiddleware.NewAuthMiddleware(tokenSvc, userRepo),
	})
	r.RegisterRoutes(e)

	return e
}

func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)

	return envelope.Data
}

func registerAndLogin(t *testing.T, e *echo.Echo, username, password string) string {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/register", "",
		fmt.Sprintf(`{"username":%q,"password":%q}`, username, password))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/token", "",
		fmt.Sprintf(`{"username":%q,"password":%q}`, username, password))
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	require.Equal(t, "bearer", data["token_type"])
	token, ok := data["access_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	return token
}

func TestRegister(t *testing.T) {
	t.Parallel()

	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/register", "", `{"username":"bob","password":"pw1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	data := decodeData(t, rec)
	assert.Equal(t, "bob", data["username"])
	assert.NotEmpty(t, data["id"])
	assert.NotEmpty(t, data["created_at"])
	// The stored hash must never appear in any response.
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "hash")
}

func TestRegister_DuplicateUsername(t *testing.T) {
	t.Parallel()

	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/register", "", `{"username":"bob","password":"pw1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/register", "", `{"username":"bob","password":"other"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "DUPLICATE_USERNAME")
	assert.Contains(t, rec.Body.String(), "Username is already registered")
}

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()

	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/register", "", `{"username":"bob"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToken_FormEncodedBody(t *testing.T) {
	t.Parallel()

	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/register", "", `{"username":"bob","password":"pw1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/token",
		strings.NewReader("username=bob&password=pw1"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	assert.NotEmpty(t, decodeData(t, res)["access_token"])
}

func TestToken_UniformFailure(t *testing.T) {
	t.Parallel()

	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/register", "", `{"username":"bob","password":"pw1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	wrongPassword := doJSON(e, http.MethodPost, "/token", "", `{"username":"bob","password":"nope"}`)
	unknownUser := doJSON(e, http.MethodPost, "/token", "", `{"username":"nobody","password":"pw1"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, "Bearer", wrongPassword.Header().Get(echo.HeaderWWWAuthenticate))
	assert.Equal(t, "Bearer", unknownUser.Header().Get(echo.HeaderWWWAuthenticate))
	assert.Contains(t, wrongPassword.Body.String(), "Incorrect username or password")

	// The two failure modes must be indistinguishable.
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestTasks_RequireAuthentication(t *testing.T) {
	t.Parallel()

	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/tasks", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))

	rec = doJSON(e, http.MethodGet, "/tasks", "not-a-real-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTasks_CRUDLifecycle(t *testing.T) {
	t.Parallel()

	e := newTestServer(t)
	token := registerAndLogin(t, e, "bob", "pw1")

	rec := doJSON(e, http.MethodPost, "/tasks", token,
		`{"title":"Buy milk","description":"two liters"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeData(t, rec)
	assert.Equal(t, "Buy milk", created["title"])
	assert.Equal(t, false, created["completed"])
	id, ok := created["id"].(string)
	require.True(t, ok)

	rec = doJSON(e, http.MethodGet, "/tasks/"+id, token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Buy milk", decodeData(t, rec)["title"])

	rec = doJSON(e, http.MethodPut, "/tasks/"+id, token,
		`{"title":"Buy milk","description":"two liters","completed":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeData(t, rec)["completed"])

	rec = doJSON(e, http.MethodGet, "/tasks", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listEnvelope struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listEnvelope))
	require.Len(t, listEnvelope.Data, 1)

	rec = doJSON(e, http.MethodDelete, "/tasks/"+id, token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/tasks/"+id, token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTasks_OwnershipScoping(t *testing.T) {
	t.Parallel()

	e := newTestServer(t)
	bobToken := registerAndLogin(t, e, "bob", "pw1")
	carolToken := registerAndLogin(t, e, "carol", "pw2")

	rec := doJSON(e, http.MethodPost, "/tasks", bobToken, `{"title":"Bob's task"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	id, ok := decodeData(t, rec)["id"].(string)
	require.True(t, ok)

	// Carol's list is empty; Bob's task does not exist from her viewpoint.
	rec = doJSON(e, http.MethodGet, "/tasks", carolToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listEnvelope struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listEnvelope))
	assert.Empty(t, listEnvelope.Data)

	notFoundBodies := make([]string, 0, 3)
	for _, tc := range []struct {
		method string
		body   string
	}{
		{http.MethodGet, ""},
		{http.MethodPut, `{"title":"hijack"}`},
		{http.MethodDelete, ""},
	} {
		rec = doJSON(e, tc.method, "/tasks/"+id, carolToken, tc.body)
		assert.Equal(t, http.StatusNotFound, rec.Code, tc.method)
		notFoundBodies = append(notFoundBodies, rec.Body.String())
	}

	// A foreign task and a missing task must be indistinguishable.
	rec = doJSON(e, http.MethodGet, "/tasks/"+uuid.NewString(), carolToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, rec.Body.String(), notFoundBodies[0])

	// Bob's task is untouched.
	rec = doJSON(e, http.MethodGet, "/tasks/"+id, bobToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bob's task", decodeData(t, rec)["title"])
}

func TestTasks_InvalidID(t *testing.T) {
	t.Parallel()

	e := newTestServer(t)
	token := registerAndLogin(t, e, "bob", "pw1")

	rec := doJSON(e, http.MethodGet, "/tasks/not-a-uuid", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
