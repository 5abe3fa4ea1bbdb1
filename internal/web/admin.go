package web

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
)

const adminCookie = "admin_token"

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !equal(token, s.adminToken) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) adminRoutes(r *gin.Engine) {
	store := s.opts.Store

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{"Title": "Admin Login"})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		userOK := equal(c.PostForm("username"), s.opts.Admin.Username)
		passOK := equal(c.PostForm("password"), s.opts.Admin.Password)
		if !userOK || !passOK {
			s.log.Warn("failed admin login", "client", store.HashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"Title": "Admin Login",
				"Error": "Invalid credentials",
			})
			return
		}
		c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", false, true)
		s.log.Info("admin login", "client", store.HashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin", s.adminAuth())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := store.Stats(c.Request.Context())
		if err != nil {
			s.log.Error("loading admin stats", "error", err)
			c.HTML(http.StatusInternalServerError, "admin-dashboard.html", gin.H{
				"Error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"Stats":    stats,
			"Sessions": s.opts.Sessions.Len(),
		})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := store.Stats(c.Request.Context())
		if err != nil {
			s.log.Error("loading admin stats", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := store.Stats(c.Request.Context())
		if err != nil {
			s.log.Error("exporting admin stats", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		s.log.Info("admin stats exported", "client", store.HashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := store.Cleanup(c.Request.Context(), s.opts.Retention)
		if err != nil {
			s.log.Error("privacy cleanup", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
			return
		}
		s.log.Info("privacy cleanup", "removed", n)
		c.JSON(http.StatusOK, gin.H{"removed": n})
	})
}
