package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storyline-app/storyline-cli/internal/client/models"
	"github.com/storyline-app/storyline-cli/internal/client/services"
	"github.com/storyline-app/storyline-cli/internal/client/snapshot"
	"github.com/storyline-app/storyline-cli/internal/logging"
)

// ------------ helpers ------------

// scriptInput replaces the interactive prompts with canned answers,
// one per call.
func scriptInput(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	t.Cleanup(func() { getSimpleText = orig })

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		a := answers[i]
		i++
		return a, nil
	}
}

func scriptPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	t.Cleanup(func() { getPassword = orig })
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
}

func newTestApp() *App {
	return &App{
		reader: bufio.NewReader(strings.NewReader("")),
		log:    logging.NewDefault(slog.LevelError),
	}
}

func openTestStore(t *testing.T) *snapshot.Store {
	t.Helper()
	s, err := snapshot.Open(context.Background(), filepath.Join(t.TempDir(), "snap.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

type fakeSession struct {
	signedIn bool
	email    string
	password string
	signOuts int
	err      error
}

func (f *fakeSession) SignedIn() bool { return f.signedIn }
func (f *fakeSession) SignIn(ctx context.Context, email, password string) error {
	if f.err != nil {
		return f.err
	}
	f.signedIn = true
	f.email = email
	f.password = password
	return nil
}
func (f *fakeSession) SignOut(ctx context.Context) error {
	f.signedIn = false
	f.signOuts++
	return nil
}

type fakeItems struct {
	lastQuery services.ItemQuery
	lastText  string
	out       []models.Record
	created   models.Record
	err       error
}

func (f *fakeItems) List(ctx context.Context, q services.ItemQuery) ([]models.Record, error) {
	f.lastQuery = q
	return f.out, f.err
}
func (f *fakeItems) CreateFromText(ctx context.Context, text string) (models.Record, error) {
	f.lastText = text
	return f.created, f.err
}

type fakeSchedules struct {
	lastMonth string
	out       []models.Record
	err       error
}

func (f *fakeSchedules) List(ctx context.Context, month string) ([]models.Record, error) {
	f.lastMonth = month
	return f.out, f.err
}

type fakeTransactions struct {
	out []models.Record
	err error
}

func (f *fakeTransactions) List(ctx context.Context) ([]models.Record, error) {
	return f.out, f.err
}

type fakeSearch struct {
	searches []services.SearchQuery
	prefixes []services.SearchQuery
	out      []models.Record
}

func (f *fakeSearch) Search(ctx context.Context, q services.SearchQuery) ([]models.Record, error) {
	f.searches = append(f.searches, q)
	return f.out, nil
}
func (f *fakeSearch) SearchPrefix(ctx context.Context, q services.SearchQuery) ([]models.Record, error) {
	f.prefixes = append(f.prefixes, q)
	return f.out, nil
}

type fakeAI struct {
	out models.ParseResult
	err error
}

func (f *fakeAI) ParseText(ctx context.Context, text string) (models.ParseResult, error) {
	return f.out, f.err
}

// ------------ tests ------------

func TestLogin_SignsInAndKeepsEmail(t *testing.T) {
	scriptInput(t, "user@example.com")
	scriptPassword(t, "hunter2")

	session := &fakeSession{}
	a := newTestApp()
	a.session = session

	require.NoError(t, a.Login(context.Background()))

	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "user@example.com", session.email)
	assert.Equal(t, "hunter2", session.password)
	assert.Equal(t, "(user@example.com)", a.getStatus())
}

func TestLogin_ErrorDoesNotKeepEmail(t *testing.T) {
	scriptInput(t, "user@example.com")
	scriptPassword(t, "wrong")

	a := newTestApp()
	a.session = &fakeSession{err: errors.New("INVALID_PASSWORD")}

	require.Error(t, a.Login(context.Background()))
	assert.Empty(t, a.email)
	assert.False(t, a.isLoggedIn())
}

func TestLogout_ClearsSessionAndCache(t *testing.T) {
	session := &fakeSession{signedIn: true}
	a := newTestApp()
	a.session = session
	a.email = "user@example.com"
	a.fetched = []models.Record{{ID: "1"}}

	require.NoError(t, a.Logout(context.Background()))

	assert.Equal(t, 1, session.signOuts)
	assert.Empty(t, a.email)
	assert.Nil(t, a.fetched)
	assert.Empty(t, a.getStatus())
}

func TestItems_PassesMonthAndCachesResult(t *testing.T) {
	scriptInput(t, "2026-08")

	items := &fakeItems{out: []models.Record{{ID: "1", Title: "lunch"}}}
	a := newTestApp()
	a.items = items

	require.NoError(t, a.Items(context.Background()))

	assert.Equal(t, "2026-08", items.lastQuery.Month)
	require.Len(t, a.fetched, 1)
	assert.Equal(t, "1", a.fetched[0].ID)
}

func TestAdd_EmptyTextIsNoop(t *testing.T) {
	scriptInput(t, "")

	items := &fakeItems{}
	a := newTestApp()
	a.items = items

	require.NoError(t, a.Add(context.Background()))
	assert.Empty(t, items.lastText)
}

func TestAdd_SendsText(t *testing.T) {
	scriptInput(t, "점심 9,000")

	items := &fakeItems{created: models.Record{ID: "7", Title: "점심 9,000", Amount: 9000, Type: models.TypeExpense}}
	a := newTestApp()
	a.items = items

	require.NoError(t, a.Add(context.Background()))
	assert.Equal(t, "점심 9,000", items.lastText)
}

func TestSearch_RoutesPrefixQueries(t *testing.T) {
	search := &fakeSearch{out: []models.Record{{ID: "1"}}}
	a := newTestApp()
	a.search = search

	scriptInput(t, "den*")
	require.NoError(t, a.Search(context.Background()))

	require.Len(t, search.prefixes, 1)
	assert.Equal(t, "den", search.prefixes[0].Term)
	assert.Empty(t, search.searches)

	scriptInput(t, "dentist")
	require.NoError(t, a.Search(context.Background()))

	require.Len(t, search.searches, 1)
	assert.Equal(t, "dentist", search.searches[0].Term)
}

func TestParse_FallsBackToLocalParser(t *testing.T) {
	scriptInput(t, "점심 5만원")

	a := newTestApp()
	a.ai = &fakeAI{err: errors.New("model unavailable")}

	require.NoError(t, a.Parse(context.Background()))
}

func TestSync_WritesSnapshotAndCaches(t *testing.T) {
	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	a := newTestApp()
	a.store = openTestStore(t)
	a.items = &fakeItems{out: []models.Record{{ID: "i1", Title: "lunch", Type: models.TypeExpense, Date: day}}}
	a.schedules = &fakeSchedules{out: []models.Record{{ID: "s1", Title: "dentist", Type: models.TypeSchedule}}}
	a.transactions = &fakeTransactions{out: []models.Record{{ID: "t1", Title: "card", Type: models.TypeExpense}}}

	require.NoError(t, a.Sync(context.Background()))

	assert.Len(t, a.fetched, 3)

	got, err := a.store.Records.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestSync_StopsOnFetchError(t *testing.T) {
	a := newTestApp()
	a.store = openTestStore(t)
	a.items = &fakeItems{err: errors.New("boom")}

	require.Error(t, a.Sync(context.Background()))
	assert.Empty(t, a.fetched)
}

func TestFilter_FallsBackToSnapshot(t *testing.T) {
	a := newTestApp()
	a.store = openTestStore(t)

	require.NoError(t, snapshot.ReplaceAll(context.Background(), a.store.DB(), []models.Record{
		{ID: "1", Title: "lunch", Type: models.TypeExpense, Category: "food"},
		{ID: "2", Title: "dentist", Type: models.TypeSchedule},
	}))

	// type filter, then empties for the remaining prompts
	scriptInput(t, "expense", "", "", "", "", "", "", "", "", "")

	require.NoError(t, a.Filter(context.Background()))
}

func TestPromptFilterSpec_CoversAllClauses(t *testing.T) {
	scriptInput(t,
		"expense",    // type
		"food",       // category
		"unpaid",     // paid selector
		"2026-08-01", // from
		"2026-08-31", // to
		"1000",       // min amount
		"50000",      // max amount
		"lunch",      // free text
		"amount",     // sort key
		"asc",        // direction
	)

	a := newTestApp()
	spec, err := a.promptFilterSpec()
	require.NoError(t, err)

	assert.Equal(t, []models.RecordType{models.TypeExpense}, spec.Types)
	assert.Equal(t, []string{"food"}, spec.Categories)
	assert.Equal(t, models.Unpaid, spec.Paid)
	assert.Equal(t, "2026-08-01", spec.DateFrom)
	assert.Equal(t, "2026-08-31", spec.DateTo)
	require.NotNil(t, spec.AmountMin)
	assert.Equal(t, 1000.0, *spec.AmountMin)
	require.NotNil(t, spec.AmountMax)
	assert.Equal(t, 50000.0, *spec.AmountMax)
	assert.Equal(t, "lunch", spec.Query)
	assert.Equal(t, models.SortByAmount, spec.SortBy)
	assert.Equal(t, models.SortAsc, spec.SortDir)
}

func TestExport_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	scriptInput(t, "csv", path)

	a := newTestApp()
	a.fetched = []models.Record{{ID: "1", Title: "lunch", Amount: 9000, Type: models.TypeExpense}}

	require.NoError(t, a.Export(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "lunch")
}

func TestExport_UnknownFormatIsNoop(t *testing.T) {
	scriptInput(t, "xml", "out.xml")

	a := newTestApp()
	a.fetched = []models.Record{{ID: "1"}}

	require.NoError(t, a.Export(context.Background()))
	_, err := os.Stat("out.xml")
	assert.True(t, os.IsNotExist(err))
}
