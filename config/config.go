// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Config struct'ı tüm ayarları tek bir yerde toplar; main, CLI ve testler
// os.Getenv() yerine tek bir Config nesnesi taşır.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAPIURL, API_URL verilmediğinde kullanılan production backend adresi.
const DefaultAPIURL = "https://djangocampus.pythonanywhere.com/api"

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
// Her alt bölüm ayrı bir struct, her biri tek bir concern.
type Config struct {
	Server    ServerConfig
	API       APIConfig
	Log       LogConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Email     EmailConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
}

// APIConfig, upstream Django backend ayarları.
type APIConfig struct {
	BaseURL       string        // ör: https://djangocampus.pythonanywhere.com/api
	Timeout       time.Duration // Tek bir isteğin üst sınırı
	RetryAttempts uint          // 1 = retry yok; sadece GET'ler tekrar denenir
}

// LogConfig, zap log seviyesi.
type LogConfig struct {
	Level string // debug | info | warn | error
}

// CORSConfig, frontend origin'leri.
type CORSConfig struct {
	AllowedOrigins []string
}

// RateLimitConfig, form POST'ları için IP bazlı limit.
type RateLimitConfig struct {
	FormRequests int           // Window başına izin verilen POST sayısı
	Window       time.Duration // Sabit: 1 dakika

	// TrustProxyHeaders, X-Forwarded-For / X-Real-IP'ye güvenilip güvenilmeyeceği.
	// Sadece reverse proxy arkasında açılmalı; aksi halde client header'ı
	// değiştirerek limiti atlatabilir.
	TrustProxyHeaders bool
}

// EmailConfig, Resend ile partner başvurusu gönderimi.
// APIKey boşsa email devre dışıdır.
type EmailConfig struct {
	ResendAPIKey string
	From         string
	InquiryTo    string
}

// Enabled, partner başvurusu gönderimi için gereken üç değer de doluysa true.
func (c EmailConfig) Enabled() bool {
	return c.ResendAPIKey != "" && c.From != "" && c.InquiryTo != ""
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler (development kolaylığı için).
func Load() (*Config, error) {
	// .env yoksa hata vermez, production'da gerçek env variable'lar kullanılır.
	_ = godotenv.Load()

	return FromEnv()
}

// FromEnv, .env dosyasına dokunmadan sadece process environment'ından okur.
func FromEnv() (*Config, error) {
	port, err := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	timeoutSeconds, err := strconv.Atoi(getEnv("API_TIMEOUT_SECONDS", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_TIMEOUT_SECONDS: %w", err)
	}
	if timeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid API_TIMEOUT_SECONDS: must be positive, got %d", timeoutSeconds)
	}

	retryAttempts, err := strconv.ParseUint(getEnv("API_RETRY_ATTEMPTS", "1"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid API_RETRY_ATTEMPTS: %w", err)
	}
	if retryAttempts == 0 {
		retryAttempts = 1
	}

	formLimit, err := strconv.Atoi(getEnv("FORM_RATE_LIMIT", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid FORM_RATE_LIMIT: %w", err)
	}

	trustProxy, err := strconv.ParseBool(getEnv("TRUST_PROXY_HEADERS", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid TRUST_PROXY_HEADERS: %w", err)
	}

	// API_URL yoksa frontend'in NEXT_PUBLIC_API_URL'i de kabul edilir.
	apiURL := getEnv("API_URL", getEnv("NEXT_PUBLIC_API_URL", DefaultAPIURL))

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		API: APIConfig{
			BaseURL:       strings.TrimRight(apiURL, "/"),
			Timeout:       time.Duration(timeoutSeconds) * time.Second,
			RetryAttempts: uint(retryAttempts),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		},
		RateLimit: RateLimitConfig{
			FormRequests:      formLimit,
			Window:            time.Minute,
			TrustProxyHeaders: trustProxy,
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			From:         getEnv("RESEND_FROM", ""),
			InquiryTo:    getEnv("PARTNER_INQUIRY_TO", ""),
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:8080").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv, environment variable'ı okur, yoksa veya boşsa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

// splitList, virgülle ayrılmış listeyi boşlukları kırparak böler.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
