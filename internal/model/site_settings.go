package model

import (
	"fmt"
	"time"
)

// SiteSettingsID はサイト設定シングルトン行の固定 ID
const SiteSettingsID = "global_settings"

// SiteSettings はサイト全体設定（固定 ID のシングルトン行）
type SiteSettings struct {
	ID              string    `json:"id"`
	SiteName        *string   `json:"siteName"`
	MaintenanceMode bool      `json:"maintenanceMode"`
	ContactEmail    *string   `json:"contactEmail"`
	FooterMessage   *string   `json:"footerMessage"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// SiteSettingsPatch はサイト設定更新リクエスト
type SiteSettingsPatch struct {
	SiteName        *string `json:"siteName"`
	MaintenanceMode *bool   `json:"maintenanceMode"`
	ContactEmail    *string `json:"contactEmail"`
	FooterMessage   *string `json:"footerMessage"`
}

// DefaultSiteSettings は設定行が存在しない場合に返す既定値を生成する。
func DefaultSiteSettings(now time.Time) *SiteSettings {
	name := "NigeriaGovHub"
	email := "info@example.com"
	footer := fmt.Sprintf("© %d NigeriaGovHub. All rights reserved.", now.Year())
	return &SiteSettings{
		ID:              SiteSettingsID,
		SiteName:        &name,
		MaintenanceMode: false,
		ContactEmail:    &email,
		FooterMessage:   &footer,
		UpdatedAt:       now,
	}
}
