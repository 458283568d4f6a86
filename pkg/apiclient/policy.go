package apiclient

import "github.com/djangocampus/campus/pkg/logger"

// Failure policy, iki kategori vardır ve her service operasyonu bunlardan birini seçer:
//
//   - Propagate (varsayılan): error olduğu gibi caller'a döner. Register, Subscribe gibi
//     "action" operasyonları ve sayfanın retry banner'ı göstermesi gereken listeler.
//   - Fallback: error loglanır ve güvenli bir varsayılan değer döner ([]/false/nil).
//     Sayfanın boş bölüm gösterip devam edebildiği yardımcı sorgular.
//
// Service'ler kendi try/catch'lerini yazmaz; Fallback'i çağırır.

// Fallback, fn'i çalıştırır; hata olursa loglayıp fallback değerini döner.
func Fallback[T any](lggr logger.Logger, op string, fallback T, fn func() (T, error)) T {
	v, err := fn()
	if err != nil {
		lggr.Warnw("request failed, using fallback value", "op", op, "error", err)
		return fallback
	}
	return v
}
