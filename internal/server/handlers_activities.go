package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mergington/activities/internal/domain"
	apperrors "github.com/mergington/activities/internal/errors"
)

func (s *Server) handleListActivities(c echo.Context) error {
	activities, err := s.registry.ListActivities(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("failed to list activities", err)
	}

	if err := c.JSON(http.StatusOK, activities); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleSignup(c echo.Context) error {
	activity, email, err := activityParams(c)
	if err != nil {
		return err
	}

	msg, err := s.registry.Signup(c.Request().Context(), activity, email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			return apperrors.NotFoundError("Activity not found").
				WithField("activity", activity)
		case errors.Is(err, domain.ErrAlreadySignedUp):
			return apperrors.ValidationError("Student is already signed up for this activity").
				WithField("activity", activity).
				WithField("email", email)
		default:
			return apperrors.InternalError("failed to sign up", err).
				WithField("activity", activity)
		}
	}

	if err := c.JSON(http.StatusOK, map[string]string{"message": msg}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleUnregister(c echo.Context) error {
	activity, email, err := activityParams(c)
	if err != nil {
		return err
	}

	msg, err := s.registry.Unregister(c.Request().Context(), activity, email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			return apperrors.NotFoundError("Activity not found").
				WithField("activity", activity)
		case errors.Is(err, domain.ErrNotRegistered):
			return apperrors.ValidationError("Student is not registered for this activity").
				WithField("activity", activity).
				WithField("email", email)
		default:
			return apperrors.InternalError("failed to unregister", err).
				WithField("activity", activity)
		}
	}

	if err := c.JSON(http.StatusOK, map[string]string{"message": msg}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// activityParams extracts the activity name from the path and the student
// email from the query string. Activity names may contain spaces, so the
// path segment arrives percent-encoded.
func activityParams(c echo.Context) (activity, email string, err error) {
	activity, err = url.PathUnescape(c.Param("name"))
	if err != nil {
		return "", "", apperrors.ValidationError("invalid activity name").
			WithField("name", c.Param("name"))
	}

	email = c.QueryParam("email")
	if strings.TrimSpace(email) == "" {
		return "", "", apperrors.ValidationError("email is required").
			WithField("activity", activity)
	}

	return activity, email, nil
}
