// Command-line chat client for the AIHub engine.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"aihub/aihub/catalog"
	"aihub/aihub/config"
	"aihub/aihub/services/llm"
	"aihub/aihub/session"
	"aihub/aihub/utils/logging"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

var (
	promptColor = color.New(color.FgCyan, color.Bold)
	agentColor  = color.New(color.FgHiYellow)
	infoColor   = color.New(color.FgGreen)
	errColor    = color.New(color.FgRed, color.Bold)
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()

	cat, err := catalog.NewFromFile(cfg.DefaultLocale, cfg.AgentsFile)
	if err != nil {
		errColor.Fprintln(os.Stderr, "catalog load error:", err)
		os.Exit(1)
	}

	chain := llm.NewChain(
		llm.NewBackendClient(cfg.BackendURL, cfg.BackendAPIKey),
		llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL),
		llm.NewMockClient(),
	)
	manager := session.NewManager(cat, chain, cfg.Model, cfg.DefaultLocale)

	agents := cat.ListAgents(cfg.DefaultLocale)
	fmt.Println("Available agents:")
	for i, a := range agents {
		fmt.Printf("  %d. %s — %s\n", i+1, a.Name, a.Description)
	}
	fmt.Print("Pick an agent (number, empty for default): ")

	scanner := bufio.NewScanner(os.Stdin)
	agentID := ""
	if scanner.Scan() {
		choice := strings.TrimSpace(scanner.Text())
		var n int
		if _, err := fmt.Sscanf(choice, "%d", &n); err == nil && n >= 1 && n <= len(agents) {
			agentID = agents[n-1].ID
		}
	}

	s := manager.CreateSession(agentID)
	agent, err := cat.FindAgent(s.AgentID)
	if err != nil {
		agent = cat.First()
	}
	logging.AppLogger.Info("CLI session started",
		zap.String("session_id", s.ID),
		zap.String("agent_id", s.AgentID),
	)

	infoColor.Printf("\nChatting with %s. Type your message or 'exit' to quit.\n", agent.Name)
	if agent.WelcomeMessage != "" {
		agentColor.Println(agent.WelcomeMessage)
	}
	fmt.Println()

	for {
		promptColor.Printf("%s> ", agent.Name)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			fmt.Println("Goodbye!")
			break
		}
		if line == "" {
			continue
		}

		err := manager.SendMessage(context.Background(), s.ID, line, func(chunk string) {
			agentColor.Print(chunk)
		})
		if err != nil {
			errColor.Println("error:", err)
			continue
		}
		fmt.Println()
		fmt.Println()
	}
}
