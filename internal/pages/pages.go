// Package pages は HTML 画面と公開アセットの配信を提供します。
package pages

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

// 画面名
const (
	Home     = "home"
	Register = "register"
	Login    = "login"
	View     = "view"
)

// Subjects は小テストを提供している科目です。
var Subjects = []string{"mnst", "mc", "cd", "cns", "ml"}

// Page は読み込み済みの画面です。
type Page struct {
	Name        string
	ContentType string
	Body        []byte
}

// Catalog は起動時に読み込んだ画面の一覧です。
type Catalog struct {
	pages    map[string]*Page
	subjects map[string]*Page
}

// Load は dir 配下の画面を読み込みます。必要な画面が欠けている場合はエラーです。
//
//	dir/home.html, register.html, login.html, view.html
//	dir/subjects/<subject>.html
func Load(dir string) (*Catalog, error) {
	catalog := &Catalog{
		pages:    make(map[string]*Page),
		subjects: make(map[string]*Page),
	}

	for _, name := range []string{Home, Register, Login, View} {
		page, err := loadPage(name, filepath.Join(dir, name+".html"))
		if err != nil {
			return nil, err
		}
		catalog.pages[name] = page
	}

	for _, subject := range Subjects {
		page, err := loadPage(subject, filepath.Join(dir, "subjects", subject+".html"))
		if err != nil {
			return nil, err
		}
		catalog.subjects[subject] = page
	}

	return catalog, nil
}

func loadPage(name, path string) (*Page, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load page %q: %w", name, err)
	}
	return &Page{
		Name:        name,
		ContentType: mimetype.Detect(body).String(),
		Body:        body,
	}, nil
}

// Page は名前で画面を返します。
func (c *Catalog) Page(name string) (*Page, bool) {
	page, ok := c.pages[name]
	return page, ok
}

// Subject は科目名（大文字小文字を区別しない）で画面を返します。
func (c *Catalog) Subject(name string) (*Page, bool) {
	page, ok := c.subjects[strings.ToLower(name)]
	return page, ok
}

// Serve は固定の画面を返すハンドラーです。
func (c *Catalog) Serve(name string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		page, ok := c.Page(name)
		if !ok {
			ctx.String(http.StatusNotFound, "Page not found")
			return
		}
		writePage(ctx, page)
	}
}

// ServeSubject は GET /subjects/:subject のハンドラーです。
func (c *Catalog) ServeSubject(ctx *gin.Context) {
	page, ok := c.Subject(ctx.Param("subject"))
	if !ok {
		ctx.String(http.StatusNotFound, "Subject not found")
		return
	}
	writePage(ctx, page)
}

func writePage(ctx *gin.Context, page *Page) {
	ctx.Header("Cache-Control", "no-store")
	ctx.Data(http.StatusOK, page.ContentType, page.Body)
}
