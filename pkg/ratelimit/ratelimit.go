// Package ratelimit, kayıt, bülten ve partner formlarına
// karşı IP bazlı FormRateLimiter sağlar.
//
// Tasarım:
// - Her IP adresi için fixed window ile istek sayısı takip edilir.
// - Window süresi içinde maxRequests aşılırsa istek reddedilir (429).
// - Background goroutine ile süresi dolmuş bucket'lar temizlenir.
//
// In-memory tutulur: tek instance deploy, kalıcı state yok.
// pkg/ratelimit hiçbir proje içi pakete bağımlı değildir (leaf dependency).
package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// bucket, bir IP adresi için istek sayacı ve window başlangıç zamanı tutar.
type bucket struct {
	count       int
	windowStart time.Time
}

// FormRateLimiter, IP bazlı form gönderim limiti.
//
// Kullanım:
//
//	limiter := NewFormRateLimiter(10, time.Minute)
//	defer limiter.Stop()
//	if !limiter.Allow(ip) { return 429 }
type FormRateLimiter struct {
	mu          sync.RWMutex
	buckets     map[string]*bucket
	maxRequests int
	window      time.Duration
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

// NewFormRateLimiter, yeni rate limiter oluşturur ve arka plan temizleme
// goroutine'ini başlatır. maxRequests <= 0 ise limit uygulanmaz.
func NewFormRateLimiter(maxRequests int, window time.Duration) *FormRateLimiter {
	rl := &FormRateLimiter{
		buckets:     make(map[string]*bucket),
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Allow, IP'nin bu window'da bir form daha gönderip gönderemeyeceğini söyler.
// Her çağrı sayacı artırır.
func (rl *FormRateLimiter) Allow(ip string) bool {
	if rl.maxRequests <= 0 {
		return true
	}

	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, exists := rl.buckets[ip]
	if !exists {
		rl.buckets[ip] = &bucket{count: 1, windowStart: now}
		return true
	}

	// Window dolmuş, yeni pencere
	if now.Sub(b.windowStart) > rl.window {
		b.count = 1
		b.windowStart = now
		return true
	}

	b.count++
	return b.count <= rl.maxRequests
}

// RetryAfterSeconds, kalan bekleme süresini saniye cinsinden döner.
// HTTP Retry-After header değeri olarak kullanılır.
func (rl *FormRateLimiter) RetryAfterSeconds(ip string) int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()

	b, exists := rl.buckets[ip]
	if !exists {
		return 0
	}

	remaining := rl.window - rl.now().Sub(b.windowStart)
	if remaining < 0 {
		return 0
	}
	return int(remaining.Seconds()) + 1 // +1 yuvarlama
}

// Stop, cleanup goroutine'ini durdurur. Birden fazla çağrı güvenlidir.
func (rl *FormRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCleanup) })
}

// cleanupLoop, her 60 saniyede süresi dolmuş bucket'ları siler.
func (rl *FormRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCleanup:
			return
		}
	}
}

func (rl *FormRateLimiter) cleanup() {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, b := range rl.buckets {
		if now.Sub(b.windowStart) > rl.window {
			delete(rl.buckets, ip)
		}
	}
}

// ClientIP, HTTP request'ten limit anahtarı olarak kullanılacak IP'yi çıkarır.
//
// trustProxy false ise sadece RemoteAddr kullanılır; forwarding header'ları
// client tarafından serbestçe yazılabildiği için yok sayılır.
// trustProxy true ise (reverse proxy arkasında) öncelik sırası:
// 1. X-Forwarded-For header (ilk IP)
// 2. X-Real-IP header
// 3. RemoteAddr
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}

		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
	}

	return remoteHost(r)
}

// remoteHost, RemoteAddr'dan port'u kırpar.
func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// FormatRetryMessage, kalan süreyi okunabilir formata çevirir.
// Örn: 120 → "2 minute(s)", 45 → "45 second(s)"
func FormatRetryMessage(seconds int) string {
	if seconds >= 60 {
		return fmt.Sprintf("%d minute(s)", seconds/60)
	}
	return fmt.Sprintf("%d second(s)", seconds)
}
