// Package services, backend API'sinin kaynak bazlı (workshop, team, partner, ...) typed
// façade'larını içerir.
//
// Her service bir interface + private struct'tır; constructor interface döner.
// Service'ler HTTP detaylarını bilmez: Backend interface'i üzerinden sabit path'lere
// istek atar ve yanıtı domain tipine çevirir.
//
// Failure policy her operasyonda açıkça seçilir (bkz. apiclient.Fallback):
// action operasyonları (Register, Subscribe, Unsubscribe) her zaman error döner;
// yardımcı sorgular (team, check-registration) loglayıp güvenli değere düşer.
package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/djangocampus/campus/models"
	"github.com/djangocampus/campus/pkg/apiclient"
)

// Backend, service'lerin ihtiyaç duyduğu HTTP client yüzeyi.
// *apiclient.Client bu interface'i implement eder.
type Backend interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

var _ Backend = (*apiclient.Client)(nil)

// invalidResponse, şekil ihlallerini apiclient.ErrInvalidResponse ile sarar.
func invalidResponse(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", apiclient.ErrInvalidResponse, path, err)
}

// decodeListOrEnvelope, yanıt bir envelope ise results'ı, düz bir dizi ise diziyi döner.
// /teams/ endpoint'i iki şekilde de yanıt verebiliyor.
func decodeListOrEnvelope[T any](path string, raw json.RawMessage) ([]T, error) {
	var env models.Envelope[T]
	if err := json.Unmarshal(raw, &env); err == nil && env.Results != nil {
		return env.Results, nil
	}

	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, invalidResponse(path, err)
	}
	if list == nil {
		return []T{}, nil
	}
	return list, nil
}
