// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/household-ledger/backend/config"
	"github.com/household-ledger/backend/internal/domain/entity"
	"github.com/household-ledger/backend/internal/infra/dependency"
	"github.com/household-ledger/backend/internal/integration/persistence/model"
	"github.com/household-ledger/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-integration"

var serverOnce sync.Once
var testServer *httptest.Server
var testDB *mock.Db

// testContext holds the state of one scenario.
type testContext struct {
	client       *http.Client
	headers      map[string]string
	response     *http.Response
	responseBody []byte
	accessToken  string
	vars         map[string]string
	db           *mock.Db
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		// The login rate limiter is skipped in the test environment.
		os.Setenv("ENV", "test")
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db:     mock.NewDb(),
	}
	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.startServer()
		return ctx, test.reset()
	})

	// Background and setup steps
	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Step(`^a user exists with email "([^"]*)" name "([^"]*)" and password "([^"]*)"$`, test.aUserExists)
	ctx.Step(`^I am logged in as "([^"]*)" with name "([^"]*)" and password "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Step(`^I am not authenticated$`, test.iAmNotAuthenticated)
	ctx.Step(`^a default category "([^"]*)" of type "([^"]*)" exists$`, test.aDefaultCategoryExists)
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.Step(`^I store the response field "([^"]*)" as "([^"]*)"$`, test.iStoreTheResponseFieldAs)

	// Response assertion steps
	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Step(`^the db should contain (\d+) rows in the "([^"]*)" table$`, test.theDbShouldContainRowsInTheTable)
}

// startServer wires the full application against the in-memory database and
// miniredis, once for the whole suite.
func (t *testContext) startServer() {
	serverOnce.Do(func() {
		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.JWT.Secret = testJWTSecret
		cfg.JWT.AccessTokenExpiry = time.Hour

		redisClient := mock.NewRedis()
		injector := dependency.NewInjector(cfg, testDB.DbConn, redisClient, dependency.HealthCheckers{
			Database: func() bool { return true },
			Redis:    func() bool { return true },
		})

		engine := injector.Router.Setup("test")
		testServer = httptest.NewServer(engine)
	})
}

// reset clears all scenario state, including persisted rows and redis keys.
func (t *testContext) reset() error {
	t.headers = make(map[string]string)
	t.vars = make(map[string]string)
	t.accessToken = ""
	t.response = nil
	t.responseBody = nil

	if err := t.db.Clear(); err != nil {
		return err
	}
	return mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) theAPIServerIsRunning() error {
	if testServer == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func (t *testContext) aUserExists(email, name, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return err
	}
	user := &model.UserModel{
		Email:        entity.NormalizeEmail(email),
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := t.db.DbConn.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	t.vars["user:"+email] = strconv.FormatInt(user.ID, 10)
	return nil
}

func (t *testContext) iAmLoggedInAs(email, name, password string) error {
	body := fmt.Sprintf(`{"email":%q,"name":%q,"password":%q}`, email, name, password)
	if err := t.iSendARequestToWithBody("POST", "/api/v1/auth/login", &godog.DocString{Content: body}); err != nil {
		return err
	}
	if t.response.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed with status %d: %s", t.response.StatusCode, string(t.responseBody))
	}

	var parsed struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(t.responseBody, &parsed); err != nil {
		return fmt.Errorf("failed to parse login response: %w", err)
	}
	t.accessToken = parsed.AccessToken
	return nil
}

func (t *testContext) iAmNotAuthenticated() error {
	t.accessToken = ""
	return nil
}

func (t *testContext) aDefaultCategoryExists(name, categoryType string) error {
	typeID := entity.CategoryTypeIDExpense
	if categoryType == string(entity.CategoryTypeIncome) {
		typeID = entity.CategoryTypeIDIncome
	}
	category := &model.CategoryModel{
		Name:      name,
		TypeID:    typeID,
		IsDefault: true,
	}
	if err := t.db.DbConn.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create default category: %w", err)
	}
	t.vars["category:"+name] = strconv.FormatInt(category.ID, 10)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, endpoint string) error {
	return t.doRequest(method, endpoint, nil)
}

func (t *testContext) iSendARequestToWithBody(method, endpoint string, body *godog.DocString) error {
	content := t.substituteVars(body.Content)
	return t.doRequest(method, endpoint, bytes.NewBufferString(content))
}

func (t *testContext) doRequest(method, endpoint string, body io.Reader) error {
	url := testServer.URL + t.substituteVars(endpoint)
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}
	if t.accessToken != "" && req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	t.response = resp
	t.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

// substituteVars replaces ${name} tokens with values captured earlier in the
// scenario.
func (t *testContext) substituteVars(s string) string {
	for name, value := range t.vars {
		s = strings.ReplaceAll(s, "${"+name+"}", value)
	}
	return s
}

func (t *testContext) iStoreTheResponseFieldAs(field, name string) error {
	value, err := t.lookupField(field)
	if err != nil {
		return err
	}
	t.vars[name] = fmt.Sprintf("%v", value)
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if t.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s",
			expectedStatus, t.response.StatusCode, string(t.responseBody))
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	expected = t.substituteVars(expected)
	if !strings.Contains(string(t.responseBody), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(t.responseBody))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := t.lookupField(field)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	expected = t.substituteVars(expected)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.lookupField(field)
	return err
}

// lookupField walks a dot-separated path through the response JSON. Numeric
// segments index into arrays.
func (t *testContext) lookupField(field string) (any, error) {
	var data any
	if err := json.Unmarshal(t.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, segment := range strings.Split(field, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response. Body: %s", field, string(t.responseBody))
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid array index %q in field %q", segment, field)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %q not found in response. Body: %s", field, string(t.responseBody))
		}
	}
	return current, nil
}

func (t *testContext) theDbShouldContainRowsInTheTable(expected int, table string) error {
	var count int64
	if err := t.db.DbConn.Table(table).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d rows in %s, got %d", expected, table, count)
	}
	return nil
}
