package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fsdevblog/readlater/internal/services/smocks"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RouterSuite struct {
	suite.Suite
	links  *smocks.LinkServiceMock
	hook   *test.Hook
	router *gin.Engine
}

func (s *RouterSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *RouterSuite) SetupTest() {
	s.links = new(smocks.LinkServiceMock)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	s.hook = hook

	s.router = SetupRouter(RouterParams{
		PingService: s.links,
		Links:       s.links,
		Logger:      logger,
	})
}

func (s *RouterSuite) do(path string) *http.Response {
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder.Result()
}

func (s *RouterSuite) TestPing() {
	s.links.On("CheckConnection", mock.Anything).Return(nil).Once()
	s.links.On("CheckConnection", mock.Anything).Return(errors.New("unable to open database file")).Once()

	res := s.do("/ping")
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	s.Equal(http.StatusOK, res.StatusCode)
	s.Equal("pong", string(body))

	res = s.do("/ping")
	defer res.Body.Close()
	s.Equal(http.StatusInternalServerError, res.StatusCode)

	last := s.hook.LastEntry()
	s.Require().NotNil(last)
	s.Equal(logrus.ErrorLevel, last.Level)
	s.Contains(last.Data["error"], "unable to open database file")
	s.links.AssertExpectations(s.T())
}

func (s *RouterSuite) TestStats() {
	s.links.On("Count", mock.Anything).Return(int64(3), nil).Once()
	s.links.On("Count", mock.Anything).Return(int64(0), errors.New("disk I/O error")).Once()

	res := s.do("/stats")
	defer res.Body.Close()
	s.Equal(http.StatusOK, res.StatusCode)

	var got statsResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&got))
	s.EqualValues(3, got.Links)

	res = s.do("/stats")
	defer res.Body.Close()
	s.Equal(http.StatusInternalServerError, res.StatusCode)
}

// TestStorageDeadline запросы к хранилищу ограничены DefaultRequestTimeout.
func (s *RouterSuite) TestStorageDeadline() {
	withDeadline := mock.MatchedBy(func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()
		return ok && time.Until(deadline) <= DefaultRequestTimeout
	})
	s.links.On("CheckConnection", withDeadline).Return(nil).Once()
	s.links.On("Count", withDeadline).Return(int64(1), nil).Once()

	for _, path := range []string{"/ping", "/stats"} {
		res := s.do(path)
		s.Equal(http.StatusOK, res.StatusCode, path)
		s.Require().NoError(res.Body.Close())
	}
	s.links.AssertExpectations(s.T())
}

func (s *RouterSuite) TestNotFound() {
	res := s.do("/")
	defer res.Body.Close()
	s.Equal(http.StatusNotFound, res.StatusCode)
	s.Equal(logrus.WarnLevel, s.hook.LastEntry().Level)
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}
