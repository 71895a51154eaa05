package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to menubot! Let's configure your bot.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Content file.
	contentPrompt := promptui.Prompt{
		Label:   "Content file",
		Default: cfg.ContentFile,
	}
	contentFile, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content file: %w", err)
	}
	cfg.ContentFile = contentFile

	// 2. Server port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 3. Session backend.
	backendPrompt := promptui.Select{
		Label: "Session backend",
		Items: []string{
			"memory - sessions live in the process",
			"redis  - sessions survive restarts",
		},
	}
	backendIdx, _, err := backendPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("session backend: %w", err)
	}
	if backendIdx == 1 {
		cfg.Session.Backend = SessionRedis
		addrPrompt := promptui.Prompt{
			Label:   "Redis address",
			Default: cfg.Session.RedisAddr,
		}
		if cfg.Session.RedisAddr, err = addrPrompt.Run(); err != nil {
			return nil, fmt.Errorf("redis address: %w", err)
		}
	}

	// 4. Webhook secret.
	secretPrompt := promptui.Prompt{
		Label: "Telegram webhook secret token (leave blank to skip)",
		Mask:  '*',
	}
	if cfg.Telegram.SecretToken, err = secretPrompt.Run(); err != nil {
		return nil, fmt.Errorf("secret token: %w", err)
	}

	botTokenPrompt := promptui.Prompt{
		Label: "Telegram bot token (leave blank to skip)",
		Mask:  '*',
	}
	if cfg.Telegram.BotToken, err = botTokenPrompt.Run(); err != nil {
		return nil, fmt.Errorf("bot token: %w", err)
	}

	// 5. Admin token for the content API.
	adminPrompt := promptui.Prompt{
		Label: "Admin token for content edits (leave blank to allow anyone)",
		Mask:  '*',
	}
	if cfg.AdminToken, err = adminPrompt.Run(); err != nil {
		return nil, fmt.Errorf("admin token: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535")
	}
	return nil
}
