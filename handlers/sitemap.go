package handlers

import (
	"encoding/xml"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type SitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

var sitemapPages = []SitemapURL{
	{Loc: "/", ChangeFreq: "weekly", Priority: "1.0"},
	{Loc: "/courses", ChangeFreq: "daily", Priority: "0.9"},
	{Loc: "/pricing", ChangeFreq: "monthly", Priority: "0.8"},
	{Loc: "/careers", ChangeFreq: "monthly", Priority: "0.7"},
	{Loc: "/blog", ChangeFreq: "weekly", Priority: "0.7"},
	{Loc: "/auth", ChangeFreq: "yearly", Priority: "0.3"},
}

// HandleSitemap lists the static pages and every catalog course
func HandleSitemap(c *fiber.Ctx) error {
	sitemap := Sitemap{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range sitemapPages {
		p.Loc = baseURL + p.Loc
		sitemap.URLs = append(sitemap.URLs, p)
	}

	list, err := courses.Courses(c.UserContext())
	if err != nil {
		log.Warn().Err(err).Msg("sitemap without courses")
	}
	for _, course := range list {
		sitemap.URLs = append(sitemap.URLs, SitemapURL{
			Loc:        baseURL + "/courses/" + url.PathEscape(course.ID),
			ChangeFreq: "weekly",
			Priority:   "0.6",
		})
	}

	return c.XML(sitemap)
}
