package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/cafe_order/config"
	"github.com/Gunvolt24/cafe_order/internal/cli"
	"github.com/Gunvolt24/cafe_order/internal/domain"
	"github.com/Gunvolt24/cafe_order/internal/repo/file"
	"github.com/Gunvolt24/cafe_order/internal/repo/memory"
	rest "github.com/Gunvolt24/cafe_order/internal/transport/http"
	"github.com/Gunvolt24/cafe_order/internal/usecase"
	"github.com/Gunvolt24/cafe_order/pkg/logger"
	"github.com/Gunvolt24/cafe_order/pkg/validate"
)

const seedCatalog = `[
  {"sku": "A1", "name": "Oat milk", "unit": "case"},
  {"sku": "B2", "name": "Espresso beans", "unit": "bag"}
]`

// newServer — сервер заказа с каталогом из двух позиций.
func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(seedCatalog), 0o600))

	log := logger.NewNop()
	svc := usecase.NewOrderService(memory.NewOrderBook(), file.NewCatalogRepository(path),
		validate.NewCatalogValidator(), nil, log, usecase.EmailSettings{Business: "Redchurch Cafe", Greeting: "Hello,"})

	ts := httptest.NewServer(rest.NewRouter(rest.NewHandler(svc, log, 0), "", ""))
	t.Cleanup(ts.Close)
	return ts
}

// run — одна команда orderctl против сервера.
func run(t *testing.T, serverURL string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := cli.NewRootCommand(config.Widget{ServerURL: serverURL, RequestTimeout: 2 * time.Second})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = cmd.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

func TestOrderctl_Session(t *testing.T) {
	ts := newServer(t)

	steps := [][]string{
		{"add", "A1", "--qty", "2"},
		{"add", "B2"},
		{"add", "A1", "-q", "3"},
		{"export"},
		{"remove", "A1"},
		{"list", "--format", "json"},
		{"remove", "B2"},
		{"export"},
	}

	var transcript bytes.Buffer
	for _, args := range steps {
		out, _, err := run(t, ts.URL, args...)
		require.NoError(t, err, "orderctl %s", strings.Join(args, " "))
		transcript.WriteString("$ orderctl " + strings.Join(args, " ") + "\n")
		transcript.WriteString(out)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "session", transcript.Bytes())
}

func TestOrderctl_JSONOutputKeepsLines(t *testing.T) {
	ts := newServer(t)

	out, _, err := run(t, ts.URL, "add", "B2", "-q", "2", "--format", "json")
	require.NoError(t, err)

	var added []domain.OrderLine
	require.NoError(t, json.Unmarshal([]byte(out), &added))
	require.Equal(t, []domain.OrderLine{{Key: "B2", Quantity: 2, Label: "Espresso beans", Unit: "bag"}}, added)

	out, _, err = run(t, ts.URL, "list", "--format", "json")
	require.NoError(t, err)

	var listed []domain.OrderLine
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Equal(t, added, listed)
}

func TestOrderctl_AddUnknownSKU(t *testing.T) {
	ts := newServer(t)

	_, _, err := run(t, ts.URL, "add", "Z9")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not in the catalog")

	// с явными name/unit позиция добавляется локально, сервер её принимает
	out, _, err := run(t, ts.URL, "add", "Z9", "--name", "Napkins", "--unit", "pack")
	require.NoError(t, err)
	require.Equal(t, "1 pack – [Z9] – Napkins\n", out)

	// в сводку сервера попадают только позиции каталога
	out, _, err = run(t, ts.URL, "list")
	require.NoError(t, err)
	require.Equal(t, "No items in the order yet.\n", out)
}

func TestOrderctl_Email(t *testing.T) {
	ts := newServer(t)

	_, _, err := run(t, ts.URL, "add", "A1")
	require.NoError(t, err)

	out, _, err := run(t, ts.URL, "email")
	require.NoError(t, err)
	require.Contains(t, out, "gmail:  https://mail.google.com/mail/")
	require.Contains(t, out, "mailto: mailto:?subject=Redchurch%20Cafe%20Weekly%20Order")
	require.Contains(t, out, "Oat%20milk")
}

func TestOrderctl_InvalidFormat(t *testing.T) {
	_, _, err := run(t, "http://127.0.0.1:1", "list", "--format", "yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid format")
}

func TestOrderctl_ServerDown(t *testing.T) {
	ts := newServer(t)
	url := ts.URL
	ts.Close()

	_, _, err := run(t, url, "list")
	require.Error(t, err)
}
