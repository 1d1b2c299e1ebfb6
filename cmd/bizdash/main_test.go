package main

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/SscSPs/bizdash/internal/adapters/storage"
	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/core/ports/repositories"
	"github.com/SscSPs/bizdash/internal/i18n"
	"github.com/SscSPs/bizdash/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CLITestSuite struct {
	suite.Suite
	router *gin.Engine
	srv    *httptest.Server
	kv     *storage.MemoryStore
	out    *bytes.Buffer
	errOut *bytes.Buffer

	mu    sync.Mutex
	calls []string
	auth  []string
}

func (s *CLITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(func(c *gin.Context) {
		s.mu.Lock()
		s.calls = append(s.calls, c.Request.Method+" "+c.Request.URL.Path)
		s.auth = append(s.auth, c.GetHeader("Authorization"))
		s.mu.Unlock()
		c.Next()
	})
	s.srv = httptest.NewServer(s.router)
	s.kv = storage.NewMemoryStore()
	s.out = &bytes.Buffer{}
	s.errOut = &bytes.Buffer{}
	s.calls = nil
	s.auth = nil
}

func (s *CLITestSuite) TearDownTest() {
	s.srv.Close()
}

func (s *CLITestSuite) run(stdin string, args ...string) int {
	d := deps{
		loadCfg: func() (*config.Config, error) {
			return &config.Config{APIBaseURL: s.srv.URL, LogEnv: "production", LogLevel: "error"}, nil
		},
		openStore: func(context.Context, *config.Config) (repositories.KeyValueStore, io.Closer, error) {
			return s.kv, nopCloser{}, nil
		},
		transport: http.DefaultTransport,
		in:        strings.NewReader(stdin),
		out:       s.out,
		errOut:    s.errOut,
	}
	return run(context.Background(), args, d)
}

func (s *CLITestSuite) login() {
	s.Require().NoError(storage.NewTokenStore(s.kv).Save(context.Background(), "access-1", "refresh-1"))
}

func (s *CLITestSuite) TestLoginStoresTokens() {
	s.router.POST("/api/superuser/login/", func(c *gin.Context) {
		var body map[string]string
		s.Require().NoError(c.ShouldBindJSON(&body))
		s.Equal("root", body["username"])
		s.Equal("pw", body["password"])
		c.JSON(http.StatusOK, gin.H{"access": "a", "refresh": "r"})
	})

	s.Equal(0, s.run("", "login", "-u", "root", "-p", "pw"))

	access, _ := storage.NewTokenStore(s.kv).Access(context.Background())
	s.Equal("a", access)
	s.Contains(s.out.String(), "Logged in successfully")
	s.Equal([]string{""}, s.auth, "login must not send a bearer token")
}

func (s *CLITestSuite) TestLoginPromptsForMissingValues() {
	s.router.POST("/api/superuser/login/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"access": "a", "refresh": "r"})
	})

	s.Equal(0, s.run("root\npw\n", "login"))
	s.Contains(s.out.String(), "Username: ")
	s.Contains(s.out.String(), "Password: ")
}

func (s *CLITestSuite) TestBusinessListSendsBearer() {
	s.login()
	s.router.GET("/api/dashboard/business/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"results": []gin.H{
			{"id": 7, "name_en": "Acme", "name_ar": "أكمي", "category": "retail", "max_admins": 3},
		}})
	})

	s.Equal(0, s.run("", "business", "list"))

	s.Contains(s.out.String(), "Acme")
	s.Contains(s.out.String(), "retail")
	s.Equal([]string{"Bearer access-1"}, s.auth)
}

func (s *CLITestSuite) TestArabicLocaleUsesArabicNames() {
	s.login()
	s.Require().NoError(s.kv.Set(context.Background(), i18n.StorageKey, "ar"))
	s.router.GET("/api/dashboard/business/", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{{"id": 7, "name_en": "Acme", "name_ar": "أكمي"}})
	})

	s.Equal(0, s.run("", "business", "list"))

	s.Contains(s.out.String(), "أكمي")
	s.Contains(s.out.String(), "الاسم")
}

func (s *CLITestSuite) TestSessionExpiryClearsTokens() {
	s.login()
	s.router.GET("/api/dashboard/clients/", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Given token not valid for any token type"})
	})

	s.Equal(1, s.run("", "client", "list"))

	access, _ := storage.NewTokenStore(s.kv).Access(context.Background())
	s.Empty(access)
	s.Equal(1, strings.Count(s.errOut.String(), "Your session has expired"))
	s.Contains(s.errOut.String(), "bizdash login")
}

func (s *CLITestSuite) TestDeleteAsksForConfirmation() {
	s.login()
	deleted := 0
	s.router.DELETE("/api/dashboard/business/:id/", func(c *gin.Context) {
		s.Equal("9", c.Param("id"))
		deleted++
		c.Status(http.StatusNoContent)
	})

	s.Equal(0, s.run("n\n", "business", "delete", "9"))
	s.Zero(deleted)
	s.Contains(s.out.String(), "Delete cancelled")

	s.Equal(0, s.run("y\n", "business", "delete", "9"))
	s.Equal(1, deleted)

	s.Equal(0, s.run("", "business", "delete", "-yes", "9"))
	s.Equal(2, deleted)
}

func (s *CLITestSuite) TestValidationFailsBeforeNetwork() {
	s.login()

	s.Equal(1, s.run("", "client", "create", "-business", "3", "-name", "Ann", "-email", "not-an-email", "-phone", "1"))

	s.Empty(s.calls)
	s.Contains(s.errOut.String(), "email")
}

func (s *CLITestSuite) TestRemoteErrorMessage() {
	s.login()
	s.router.POST("/api/dashboard/clients/", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"email": []string{"client with this email already exists."}})
	})

	s.Equal(1, s.run("", "client", "create", "-business", "3", "-name", "Ann", "-email", "a@x.io", "-phone", "1"))

	s.Contains(s.errOut.String(), "client with this email already exists.")
}

func (s *CLITestSuite) TestLocaleSetAndGet() {
	s.Equal(0, s.run("", "locale", "set", "ar"))
	s.Contains(s.out.String(), "Language changed to Arabic")
	saved, _, _ := s.kv.Get(context.Background(), i18n.StorageKey)
	s.Equal("ar", saved)

	s.out.Reset()
	s.Equal(0, s.run("", "locale", "get"))
	s.Equal("ar (rtl, font-arabic)\n", s.out.String())

	s.out.Reset()
	s.Equal(0, s.run("", "locale", "set", "ar"))
	s.NotContains(s.out.String(), "Language changed")

	s.Equal(1, s.run("", "locale", "set", "fr"))
}

func (s *CLITestSuite) TestWhoamiLoggedOut() {
	s.Equal(0, s.run("", "whoami"))
	s.Contains(s.out.String(), "You are not logged in")
}

func (s *CLITestSuite) TestUsage() {
	s.Equal(1, s.run("", "nope"))
	s.Contains(s.errOut.String(), "usage: bizdash <")

	s.Equal(1, s.run("", "business"))
	s.Contains(s.errOut.String(), "create|delete|list|show|update")

	s.Equal(1, s.run("", "business", "show", "abc"))

	s.out.Reset()
	s.Equal(0, s.run(""))
	s.Contains(s.out.String(), "usage:")
}

func (s *CLITestSuite) TestBusinessCreateFromDraft() {
	s.login()
	s.router.POST("/api/dashboard/business/", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"id": 12, "name_en": "Acme", "max_admins": 2})
	})
	s.router.GET("/api/dashboard/admins", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{})
	})
	s.router.POST("/api/dashboard/clients/", func(c *gin.Context) {
		var body map[string]any
		s.Require().NoError(c.ShouldBindJSON(&body))
		s.EqualValues(12, body["business_id"])
		c.JSON(http.StatusCreated, gin.H{"id": 1, "name": body["name"], "business_id": 12})
	})

	draft := filepath.Join(s.T().TempDir(), "draft.json")
	s.Require().NoError(os.WriteFile(draft, []byte(`{
		"business": {"nameEn": "Acme", "maxAdmins": 2},
		"clients": [{"name": "Ann", "email": "ann@x.io", "phone": "1"}, {"name": "incomplete"}]
	}`), 0o600))

	s.Equal(0, s.run("", "business", "create", "-f", draft), s.errOut.String())

	s.Contains(s.out.String(), "id 12")
	s.Contains(s.out.String(), "business 12, 1 clients, 0 admins, 0 payments")
	s.Contains(s.out.String(), "[x] 1. Business info")
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func TestReadAnswerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"1": " Open 9-5 ", "2": true, "3": 4}`), 0o600))

	got, err := readAnswerFile(path)

	require.NoError(t, err)
	assert.Equal(t, map[domain.ID]string{1: "Open 9-5", 2: "true", 3: "4"}, got)

	require.NoError(t, os.WriteFile(path, []byte(`{"x": "1"}`), 0o600))
	_, err = readAnswerFile(path)
	assert.Error(t, err)
}

func TestConfirm(t *testing.T) {
	for input, want := range map[string]bool{"y\n": true, "YES\n": true, "n\n": false, "\n": false, "": false} {
		a := &app{in: bufioReader(input), out: io.Discard}
		assert.Equal(t, want, a.confirm("sure?"), "input %q", input)
	}
}

func bufioReader(s string) *bufio.Reader { return bufio.NewReader(strings.NewReader(s)) }
