package models

// Activatable, is_active bayrağı taşıyan kayıtlar.
// Backend pasif kayıtları da döndürebilir, filtreleme caller'ın sorumluluğunda.
type Activatable interface {
	Active() bool
}

// FilterActive, sadece aktif kayıtları sırasını bozmadan döner.
// Sonuç hiçbir zaman nil değildir.
func FilterActive[T Activatable](items []T) []T {
	active := make([]T, 0, len(items))
	for _, item := range items {
		if item.Active() {
			active = append(active, item)
		}
	}
	return active
}

// SocialLinks, opsiyonel sosyal medya bağlantıları.
type SocialLinks struct {
	Twitter  string `json:"twitter,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// TeamMember, ekip sayfasında gösterilen bir ekip üyesi.
type TeamMember struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Role        string       `json:"role"`
	Bio         string       `json:"bio"`
	Image       string       `json:"image,omitempty"`
	SocialLinks *SocialLinks `json:"social_links,omitempty"`
	IsActive    bool         `json:"is_active"`
}

func (m TeamMember) Active() bool { return m.IsActive }

// Contributor, hacktoberfest sayfasındaki katkıcı.
// Sosyal alanlar backend'de nullable olduğu için *string.
type Contributor struct {
	ID             int     `json:"id"`
	FullName       string  `json:"full_name"`
	Role           int     `json:"role"`
	RoleName       string  `json:"role_name"`
	RoleBadgeColor string  `json:"role_badge_color"`
	Photo          string  `json:"photo"`
	Bio            string  `json:"bio"`
	Achievements   string  `json:"achievements"`
	LinkedIn       *string `json:"linkedin"`
	GitHub         *string `json:"github"`
	Twitter        *string `json:"twitter"`
	Website        *string `json:"website"`
	Email          *string `json:"email"`
	IsActive       bool    `json:"is_active"`
}

func (c Contributor) Active() bool { return c.IsActive }

// Partner, bir partner kuruluş. Tier (seviye) mantığı backend'dedir;
// burada sadece gösterim alanları taşınır.
type Partner struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Logo            string `json:"logo"`
	Website         string `json:"website"`
	Tier            int    `json:"tier"`
	TierName        string `json:"tier_name"`
	TierBadgeColor  string `json:"tier_badge_color"`
	PartnerType     int    `json:"partner_type"`
	PartnerTypeName string `json:"partner_type_name"`
	PartnershipDate string `json:"partnership_date"`
	IsActive        bool   `json:"is_active"`
}

func (p Partner) Active() bool { return p.IsActive }

// Supporter, bağış veya ayni destek veren kişi/kuruluş.
type Supporter struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Logo             string `json:"logo"`
	Website          string `json:"website"`
	ContributionType string `json:"contribution_type"`
	Description      string `json:"description"`
	SupportDate      string `json:"support_date"`
	IsActive         bool   `json:"is_active"`
}

func (s Supporter) Active() bool { return s.IsActive }

// CommunityMember, topluluk sayfasındaki üye / testimonial.
type CommunityMember struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Title       string       `json:"title"`
	Bio         string       `json:"bio"`
	Image       string       `json:"image,omitempty"`
	Testimonial string       `json:"testimonial"`
	SocialLinks *SocialLinks `json:"social_links,omitempty"`
}
