package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// geminiEndpoint is a variable so tests can point it at a local server.
var geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

const systemPrompt = "You are Mindy, the BetterU wellness companion. Respond with warmth and empathy, " +
	"keep answers short and practical, and gently suggest professional counseling when a user seems to be struggling. " +
	"Never give medical diagnoses or prescribe medication."

// blockedKeywords short-circuit the proxy with a safety response instead of
// forwarding the message to the model.
var blockedKeywords = []string{
	"suicide",
	"kill myself",
	"end my life",
	"self-harm",
	"self harm",
	"hurt myself",
}

const safetyResponse = "I'm really concerned about what you're going through. You don't have to face this alone - " +
	"please reach out to a crisis helpline or a mental health professional right now. " +
	"You can also book a session with one of our counselors from the app."

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction geminiContent   `json:"system_instruction"`
	Contents          []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type chatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatWithAI proxies the user's message to the hosted model with a fixed
// system prompt. Messages matching the keyword blocklist are answered with a
// canned safety response and never leave the server.
func ChatWithAI(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	if containsBlockedKeyword(req.Message) {
		c.JSON(http.StatusOK, gin.H{
			"status": "Success",
			"reply":  safetyResponse,
		})
		return
	}

	reply, err := generateReply(req.Message)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI service is unavailable right now"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "Success",
		"reply":  reply,
	})
}

// containsBlockedKeyword reports whether the message matches the blocklist,
// case-insensitively.
func containsBlockedKeyword(message string) bool {
	lowered := strings.ToLower(message)
	for _, keyword := range blockedKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// generateReply calls the hosted LLM with the fixed system prompt.
func generateReply(message string) (string, error) {
	requestData := geminiRequest{
		SystemInstruction: geminiContent{Parts: []geminiPart{{Text: systemPrompt}}},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: message}}},
		},
	}

	jsonData, err := json.Marshal(requestData)
	if err != nil {
		return "", fmt.Errorf("failed to serialize request: %w", err)
	}

	req, err := http.NewRequest("POST", geminiEndpoint+"?key="+os.Getenv("GEMINI_API_KEY"), bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var completion geminiResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("failed to decode API response: %w", err)
	}

	if len(completion.Candidates) > 0 && len(completion.Candidates[0].Content.Parts) > 0 {
		return completion.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("no reply returned by the API")
}
