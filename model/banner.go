package model

import (
	"github.com/Melek-Sahlia/AI-Agent-Assistant/style"
)

// BannerModel renders the one-line header:
//
//	Agent Assistant v1.2.0 · http://localhost:5001
type BannerModel struct {
	version string
	baseURL string
}

// NewBanner returns a BannerModel for the given build version and service URL.
func NewBanner(version, baseURL string) BannerModel {
	return BannerModel{version: version, baseURL: baseURL}
}

// View renders the banner line.
func (m BannerModel) View() string {
	title := style.BannerTitle.Render("Agent Assistant " + m.version)
	sep := style.BannerDetail.Render(" · ")
	return title + sep + style.BannerDetail.Render(m.baseURL)
}
