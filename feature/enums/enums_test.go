package enums_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"enum-registry/core/database"
	"enum-registry/core/lookup"
	"enum-registry/core/reconcile"
	"enum-registry/core/registry"
	"enum-registry/core/server"
	"enum-registry/feature/enums"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func statusRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.New([]registry.Candidate{
		{
			Name: "Status",
			Members: []registry.Member{
				{Value: 0, Name: "Pending", Labels: registry.LabelSet{
					Localized: map[string]string{"en": "Pending", "tr": "Beklemede"},
				}},
				{Value: 1, Name: "Done", Labels: registry.LabelSet{
					Localized: map[string]string{"en": "Done"},
				}},
			},
		},
		{Name: "Priority", Members: []registry.Member{{Value: 1, Name: "Low"}}},
	})
	require.NoError(t, err)
	return reg
}

func syncConfig() reconcile.Config {
	return reconcile.Config{
		Languages:        []string{"en", "tr"},
		Schema:           "core",
		DeleteOrphans:    true,
		Concurrency:      2,
		TimeoutSeconds:   10,
		PlanCacheSeconds: 30,
	}
}

func newApp(t *testing.T, engine *reconcile.Engine) *fiber.App {
	t.Helper()
	feature := enums.NewFeature(statusRegistry(t), engine, server.Config{DefaultLanguage: "tr"}, syncConfig(), zap.NewNop())
	assert.Equal(t, "enums", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app
}

func newEngine(t *testing.T) (*reconcile.Engine, *lookup.Store) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	store := lookup.NewStore(db, "core")
	require.NoError(t, store.EnsureSchema(context.Background()))
	return reconcile.NewEngine(statusRegistry(t), store, zap.NewNop()), store
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body string, headers map[string]string, out any) int {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHandleGetTypes(t *testing.T) {
	app := newApp(t, nil)

	var names []string
	status := doJSON(t, app, "GET", "/enums/types", "", nil, &names)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{"Status", "Priority"}, names)
}

func TestHandleGetValues_LanguageChain(t *testing.T) {
	app := newApp(t, nil)

	tests := []struct {
		name    string
		target  string
		headers map[string]string
		want    []enums.ValueView
	}{
		{
			name:   "explicit language",
			target: "/enums?enumName=Status&language=tr",
			want: []enums.ValueView{
				{Name: "Pending", Value: 0, Description: "Beklemede"},
				{Name: "Done", Value: 1, Description: "Done"},
			},
		},
		{
			name:    "caller language from Accept-Language",
			target:  "/enums/values?enumName=status",
			headers: map[string]string{"Accept-Language": "en-US,en;q=0.9"},
			want: []enums.ValueView{
				{Name: "Pending", Value: 0, Description: "Pending"},
				{Name: "Done", Value: 1, Description: "Done"},
			},
		},
		{
			name:   "server default language",
			target: "/enums?enumName=STATUS",
			want: []enums.ValueView{
				{Name: "Pending", Value: 0, Description: "Beklemede"},
				{Name: "Done", Value: 1, Description: "Done"},
			},
		},
		{
			name:   "no label falls back to name",
			target: "/enums?enumName=Priority&language=de",
			want:   []enums.ValueView{{Name: "Low", Value: 1, Description: "Low"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []enums.ValueView
			status := doJSON(t, app, "GET", tt.target, "", tt.headers, &got)
			assert.Equal(t, fiber.StatusOK, status)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandleGetValues_UnknownType(t *testing.T) {
	app := newApp(t, nil)

	for _, target := range []string{"/enums?enumName=DoesNotExist", "/enums"} {
		var body enums.ErrorResponse
		status := doJSON(t, app, "GET", target, "", nil, &body)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "Invalid enum type.", body.Error)
	}
}

func TestService_GetValues(t *testing.T) {
	svc := enums.NewService(statusRegistry(t), nil, server.Config{}, syncConfig(), nil)

	views, err := svc.GetValues("Status", "", "TR-tr")
	require.NoError(t, err)
	assert.Equal(t, "Beklemede", views[0].Description)

	_, err = svc.GetValues("Nope", "en", "")
	assert.ErrorIs(t, err, enums.ErrInvalidEnumType)

	assert.Equal(t, "tr", svc.EffectiveLanguage("", ""), "falls back to the system default")
	assert.Equal(t, "de", svc.EffectiveLanguage(" DE ", "en"))
}

func TestSync_WithoutDatabase(t *testing.T) {
	app := newApp(t, nil)

	var body enums.ErrorResponse
	assert.Equal(t, fiber.StatusServiceUnavailable, doJSON(t, app, "POST", "/enums/sync", "", nil, &body))
	assert.Equal(t, fiber.StatusServiceUnavailable, doJSON(t, app, "GET", "/enums/sync/plan", "", nil, &body))
}

func TestSync_PlanThenApply(t *testing.T) {
	engine, store := newEngine(t)
	app := newApp(t, engine)

	var plan reconcile.Report
	status := doJSON(t, app, "GET", "/enums/sync/plan?languages=en,tr", "", nil, &plan)
	require.Equal(t, fiber.StatusOK, status)
	assert.True(t, plan.DryRun)
	assert.Equal(t, 6, plan.Summary.Inserted)

	rows, err := store.ListRows(context.Background(), "Status", "")
	require.NoError(t, err)
	assert.Empty(t, rows, "plan writes nothing")

	var report reconcile.Report
	status = doJSON(t, app, "POST", "/enums/sync", `{"languages":["en","tr"]}`, nil, &report)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 6, report.Summary.Inserted)

	rows, err = store.ListRows(context.Background(), "Status", "tr")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Beklemede", rows[0].Description)

	// The plan cache was invalidated by the write.
	status = doJSON(t, app, "GET", "/enums/sync/plan?languages=en,tr", "", nil, &plan)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, reconcile.Summary{Types: 2}, plan.Summary)
}

func TestSync_PlanCacheSharedByEquivalentLanguages(t *testing.T) {
	engine, _ := newEngine(t)
	svc := enums.NewService(statusRegistry(t), engine, server.Config{}, syncConfig(), zap.NewNop())
	ctx := context.Background()

	first, err := svc.PlanSync(ctx, enums.SyncRequest{Languages: []string{"en,tr"}})
	require.NoError(t, err)
	assert.Equal(t, 6, first.Summary.Inserted)

	// Written behind the service's back, so only a fresh plan would see it.
	_, err = engine.ReconcileAll(ctx, reconcile.Options{Languages: []string{"en", "tr"}, Concurrency: 1})
	require.NoError(t, err)

	cached, err := svc.PlanSync(ctx, enums.SyncRequest{Languages: []string{" TR ", "en", "tr"}})
	require.NoError(t, err)
	assert.Same(t, first, cached)
}

func TestSync_SingleTypeAndErrors(t *testing.T) {
	engine, store := newEngine(t)
	app := newApp(t, engine)

	var report reconcile.Report
	status := doJSON(t, app, "POST", "/enums/sync?type=priority&languages=en", "", nil, &report)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, report.Units, 1)
	assert.Equal(t, "Priority", report.Units[0].EnumName)

	rows, err := store.ListRows(context.Background(), "Status", "")
	require.NoError(t, err)
	assert.Empty(t, rows)

	var body enums.ErrorResponse
	assert.Equal(t, fiber.StatusBadRequest, doJSON(t, app, "POST", "/enums/sync?type=Nope", "", nil, &body))
	assert.Equal(t, "Invalid enum type.", body.Error)

	assert.Equal(t, fiber.StatusBadRequest, doJSON(t, app, "POST", "/enums/sync?languages=not-a-language!", "", nil, &body))
}

type failingStore struct{}

func (failingStore) WithinUnit(ctx context.Context, enumName string, fn func(tx reconcile.UnitTx) error) error {
	if enumName == "Priority" {
		return errors.Join(reconcile.ErrStoreUnavailable, errors.New("down"))
	}
	return nil
}

func TestSync_PartialFailure(t *testing.T) {
	engine := reconcile.NewEngine(statusRegistry(t), failingStore{}, zap.NewNop())
	app := newApp(t, engine)

	var report reconcile.Report
	status := doJSON(t, app, "POST", "/enums/sync", "", nil, &report)
	assert.Equal(t, fiber.StatusMultiStatus, status)
	assert.Equal(t, 1, report.Summary.Failed)
	for _, u := range report.Units {
		if u.EnumName == "Priority" {
			assert.Contains(t, u.Error, "down")
		}
	}
}
