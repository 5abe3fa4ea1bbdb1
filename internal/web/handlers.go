package web

import (
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yetobasi/homepage/internal/analytics"
	"github.com/yetobasi/homepage/internal/carousel"
	"github.com/yetobasi/homepage/internal/content"
	"github.com/yetobasi/homepage/internal/scroll"
	"github.com/yetobasi/homepage/internal/scrollspy"
	"github.com/yetobasi/homepage/internal/session"
	"github.com/yetobasi/homepage/internal/theme"
)

const sessionKey = "session"

func (s *Server) handleIndex(c *gin.Context) {
	site := s.opts.Site
	sess, err := s.opts.Sessions.Acquire()
	if err != nil {
		// no photos means no carousel; serve the static rendition
		if !errors.Is(err, carousel.ErrEmpty) {
			s.log.Error("acquiring session", "error", err)
		}
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		if err := s.RenderIndex(c.Writer); err != nil {
			s.log.Error("rendering page", "error", err)
		}
		return
	}

	slide := s.slide(sess, sess.Carousel.State())
	c.HTML(http.StatusOK, "index.html", buildPage(site, sess.ID, sess.Spy, &slide))
}

func (s *Server) handleProjects(c *gin.Context) {
	f := content.ParseFilter(c.Query("filter"))
	c.HTML(http.StatusOK, "projects", buildProjects(s.opts.Site.Projects.Current, f))
}

// withSession loads the session named by the session query parameter.
func (s *Server) withSession(c *gin.Context) {
	sess, err := s.opts.Sessions.Get(c.Query("session"))
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "session expired"})
			return
		}
		s.log.Error("loading session", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Set(sessionKey, sess)
	c.Next()
}

func sessionFrom(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

func (s *Server) slide(sess *session.Session, st carousel.State) slideView {
	return buildSlide(sess.ID, s.opts.Site.Photos, st, s.opts.AutoplayInterval.Milliseconds())
}

func (s *Server) handleSlide(c *gin.Context) {
	sess := sessionFrom(c)
	c.HTML(http.StatusOK, "slide", s.slide(sess, sess.Carousel.State()))
}

func (s *Server) handlePhotoAction(c *gin.Context) {
	sess := sessionFrom(c)
	car := sess.Carousel
	action := c.Param("action")

	var st carousel.State
	switch action {
	case "next":
		st = car.Advance()
	case "prev":
		st = car.Retreat()
	case "pause":
		st = car.TogglePause()
	case "jump":
		i, err := strconv.Atoi(c.PostForm("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
			return
		}
		if st, err = car.Jump(i); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	case "swipe":
		start, err1 := strconv.ParseFloat(c.PostForm("start"), 64)
		end, err2 := strconv.ParseFloat(c.PostForm("end"), 64)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start and end must be numbers"})
			return
		}
		var dir carousel.Direction
		st, dir = car.Swipe(start, end)
		action += ":" + dir.String()
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown action " + strconv.Quote(action)})
		return
	}

	s.recordEvent(c, analytics.EventCarousel, sess.ID, action)
	c.HTML(http.StatusOK, "slide", s.slide(sess, st))
}

// handleStream runs the session's autoplay while the client listens and
// pushes every carousel change as a rendered slide event.
func (s *Server) handleStream(c *gin.Context) {
	sess := sessionFrom(c)
	ctx := c.Request.Context()

	updates, unsubscribe := sess.Carousel.Subscribe()
	defer unsubscribe()
	stop := sess.StartAutoplay(ctx, s.opts.AutoplayInterval)
	defer stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	first := true
	c.Stream(func(w io.Writer) bool {
		var st carousel.State
		if first {
			first, st = false, sess.Carousel.State()
		} else {
			select {
			case <-ctx.Done():
				return false
			case next, ok := <-updates:
				if !ok {
					return false
				}
				st = next
			}
		}
		html, err := s.renderFragment("slide", s.slide(sess, st))
		if err != nil {
			s.log.Error("rendering slide", "session", sess.ID, "error", err)
			return false
		}
		c.SSEvent("slide", html)
		return true
	})
}

func (s *Server) handleVisibility(c *gin.Context) {
	sess := sessionFrom(c)
	var batch []scrollspy.Entry
	if err := c.ShouldBindJSON(&batch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entries: " + err.Error()})
		return
	}

	active, moved := sess.Spy.Move(batch)
	if !moved {
		c.Status(http.StatusNoContent)
		return
	}
	s.recordEvent(c, analytics.EventNav, sess.ID, active)
	c.HTML(http.StatusOK, "nav", buildNav(sess.ID, active))
}

type scrollPlan struct {
	Target  string    `json:"target"`
	To      float64   `json:"to"`
	FrameMS float64   `json:"frameMs"`
	Offsets []float64 `json:"offsets"`
}

func (s *Server) handleScrollPlan(c *gin.Context) {
	target := c.Query("target")
	if target == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target is required"})
		return
	}
	from, err := queryFloat(c, "from")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	top, err := queryFloat(c, "top")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	to := scroll.TargetOffset(target, top, theme.HeaderHeight, theme.ScrollGap)
	c.JSON(http.StatusOK, scrollPlan{
		Target:  target,
		To:      to,
		FrameMS: float64(scroll.FrameInterval.Microseconds()) / 1000,
		Offsets: scroll.Plan(from, to, scroll.DefaultDuration, scroll.FrameInterval),
	})
}

// queryFloat parses an optional finite numeric query value; absent means 0.
func queryFloat(c *gin.Context, key string) (float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New(key + " must be a finite number")
	}
	return v, nil
}

// handleClipboard receives the outcome of the browser's clipboard write.
// A failure is logged and never surfaced to the viewer.
func (s *Server) handleClipboard(c *gin.Context) {
	id := c.Query("session")
	if c.PostForm("ok") != "true" {
		s.log.Warn("failed to copy email", "session", id, "reason", c.PostForm("error"))
		s.recordEvent(c, analytics.EventEmailCopyFailed, id, c.PostForm("error"))
		c.Status(http.StatusNoContent)
		return
	}
	s.recordEvent(c, analytics.EventEmailCopy, id, "")
	c.HTML(http.StatusOK, "copied", gin.H{"TTL": copyIndicatorTTL})
}

func (s *Server) handleSessionClose(c *gin.Context) {
	id := c.Query("session")
	if id == "" {
		id = c.PostForm("session")
	}
	if err := s.opts.Sessions.Release(id); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		s.log.Error("releasing session", "session", id, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) recordEvent(c *gin.Context, kind analytics.EventKind, sessionID, detail string) {
	if s.opts.Store == nil || c.GetHeader("DNT") == "1" {
		return
	}
	err := s.opts.Store.RecordEvent(c.Request.Context(), analytics.Event{
		Kind:    kind,
		Session: sessionID,
		Detail:  detail,
	})
	if err != nil {
		s.log.Warn("recording event", "kind", kind, "error", err)
	}
}
