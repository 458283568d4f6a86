package models

// Envelope, backend yanıtlarının genel sarmalayıcısı (ApiResponse).
//
// Hangi alanın anlamlı olduğunu envelope söylemez: liste endpoint'leri results,
// tekil endpoint'ler data döner. Caller hangisini beklediğini bilmek zorundadır.
type Envelope[T any] struct {
	Count    *int    `json:"count,omitempty"`
	Next     *string `json:"next,omitempty"`
	Previous *string `json:"previous,omitempty"`
	Results  []T     `json:"results,omitempty"`
	Data     *T      `json:"data,omitempty"`
	Message  string  `json:"message,omitempty"`
}

// List, results'ı döner; alan yoksa boş (nil olmayan) slice.
func (e *Envelope[T]) List() []T {
	if e.Results == nil {
		return []T{}
	}
	return e.Results
}

// Item, data alanını döner; yoksa ErrMissingPayload.
func (e *Envelope[T]) Item() (*T, error) {
	if e.Data == nil {
		return nil, ErrMissingPayload
	}
	return e.Data, nil
}

// Page, sayfalanmış koleksiyon yanıtı (partners/contributors/supporters).
// Bu endpoint'ler envelope'u açmadan olduğu gibi döner; aktif filtreleme
// FilterActive ile caller tarafında yapılır.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// Items, Results'ı nil olmadan döner.
func (p *Page[T]) Items() []T {
	if p.Results == nil {
		return []T{}
	}
	return p.Results
}
