package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renobook/internal/store"
)

// GetSettings 返回站点设置。
func (a *API) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"settings": a.store.Settings()})
}

type settingsPayload struct {
	SiteName        *string           `json:"siteName"`
	SiteDescription *string           `json:"siteDescription"`
	PrimaryColor    *string           `json:"primaryColor"`
	SecondaryColor  *string           `json:"secondaryColor"`
	Logo            *string           `json:"logo"`
	Favicon         *string           `json:"favicon"`
	SocialLinks     map[string]string `json:"socialLinks"`
}

// UpdateSettings 把提交的字段浅合并进站点设置单例。
func (a *API) UpdateSettings(c *gin.Context) {
	var payload settingsPayload
	if !bindJSON(c, &payload, "设置格式不正确") {
		return
	}

	updated := a.store.UpdateSettings(store.SettingsPatch{
		SiteName:        payload.SiteName,
		SiteDescription: payload.SiteDescription,
		PrimaryColor:    payload.PrimaryColor,
		SecondaryColor:  payload.SecondaryColor,
		Logo:            payload.Logo,
		Favicon:         payload.Favicon,
		SocialLinks:     payload.SocialLinks,
	})

	c.JSON(http.StatusOK, gin.H{"message": "站点设置已更新", "settings": updated})
}

// GetSiteData 返回首页静态站点数据。
func (a *API) GetSiteData(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": a.store.Data()})
}

type siteDataPayload struct {
	Navigation   []store.NavigationItem `json:"navigation"`
	Hero         *store.HeroContent     `json:"hero"`
	Benefits     []store.BenefitItem    `json:"benefits"`
	Laptops      []store.Product        `json:"laptops"`
	Process      []store.ProcessStep    `json:"process"`
	Testimonials []store.Testimonial    `json:"testimonials"`
	Footer       []store.FooterSection  `json:"footer"`
	Contact      *store.ContactInfo     `json:"contact"`
	Newsletter   *store.Newsletter      `json:"newsletter"`
}

// UpdateSiteData 把提交的栏目浅合并进站点数据单例，省略的栏目保持不变。
func (a *API) UpdateSiteData(c *gin.Context) {
	var payload siteDataPayload
	if !bindJSON(c, &payload, "站点数据格式不正确") {
		return
	}

	a.store.UpdateData(store.DataPatch{
		Navigation:   payload.Navigation,
		Hero:         payload.Hero,
		Benefits:     payload.Benefits,
		Laptops:      payload.Laptops,
		Process:      payload.Process,
		Testimonials: payload.Testimonials,
		Footer:       payload.Footer,
		Contact:      payload.Contact,
		Newsletter:   payload.Newsletter,
	})

	c.JSON(http.StatusOK, gin.H{"message": "站点数据已更新", "data": a.store.Data()})
}
