package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/practica/exercises/internal/exercises/sentiment"
	"github.com/practica/exercises/internal/exercises/summarize"
	"github.com/practica/exercises/internal/llm"
	"github.com/practica/exercises/pkg/chat"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":   AppVersion,
		"providers": s.providerNames(),
	})
}

type chatRequest struct {
	Provider    string         `json:"provider"`
	Model       string         `json:"model"`
	Temperature *float64       `json:"temperature"`
	MaxTokens   int            `json:"max_tokens"`
	Stream      bool           `json:"stream"`
	Messages    []chat.Message `json:"messages" binding:"required,min=1,dive"`
}

func (s *Server) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(validationProblem(map[string]string{"body": err.Error()}))
		return
	}

	client, problem := s.resolve(req.Provider)
	if problem != nil {
		_ = c.Error(problem)
		return
	}

	var opts []chat.Option
	if req.Model != "" {
		opts = append(opts, chat.WithModel(req.Model))
	}
	if req.Temperature != nil {
		opts = append(opts, chat.WithTemperature(*req.Temperature))
	}
	if req.MaxTokens > 0 {
		opts = append(opts, chat.WithMaxTokens(req.MaxTokens))
	}

	if req.Stream {
		s.streamChat(c, client, req.Messages, opts)
		return
	}

	text, err := client.Chat(c.Request.Context(), req.Messages, opts...)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"provider": string(client.Provider()),
		"content":  text,
	})
}

func (s *Server) streamChat(c *gin.Context, client llm.Client, msgs []chat.Message, opts []chat.Option) {
	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")

	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	err := client.Stream(c.Request.Context(), msgs, func(chunk string) error {
		data, err := json.Marshal(gin.H{"content": chunk})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", data); err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	}, opts...)
	if err != nil {
		// Headers are already out, so the error can only be logged.
		s.logger.Warn("stream aborted", zap.Error(err))
		return
	}

	_, _ = io.WriteString(c.Writer, "data: [DONE]\n\n")
	c.Writer.Flush()
}

type sentimentRequest struct {
	Provider string `json:"provider"`
	Text     string `json:"text" binding:"required"`
}

func (s *Server) sentiment(c *gin.Context) {
	var req sentimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(validationProblem(map[string]string{"body": err.Error()}))
		return
	}

	client, problem := s.resolve(req.Provider)
	if problem != nil {
		_ = c.Error(problem)
		return
	}

	analysis, err := sentiment.Analyze(c.Request.Context(), client, req.Text)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

type summarizeRequest struct {
	Provider string `json:"provider"`
	Text     string `json:"text" binding:"required"`
	MaxWords int    `json:"max_words"`
}

func (s *Server) summarize(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(validationProblem(map[string]string{"body": err.Error()}))
		return
	}

	client, problem := s.resolve(req.Provider)
	if problem != nil {
		_ = c.Error(problem)
		return
	}

	if req.MaxWords <= 0 {
		req.MaxWords = 50
	}
	summary, err := summarize.Text(c.Request.Context(), client, req.Text, req.MaxWords)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"summary":   summary,
		"max_words": req.MaxWords,
	})
}
