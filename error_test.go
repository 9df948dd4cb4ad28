package webextract_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	webextract "github.com/JLcilliers/web-page-content-extractor"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code for application errors", func(t *testing.T) {
		t.Parallel()
		err := webextract.Errorf(webextract.EUNAVAILABLE, "HTTP %d", 503)
		assert.Equal(t, webextract.EUNAVAILABLE, webextract.ErrorCode(err))
	})

	t.Run("unwraps wrapped application errors", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("fetching: %w", webextract.Errorf(webextract.EINVALID, "bad input"))
		assert.Equal(t, webextract.EINVALID, webextract.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for other errors", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, webextract.EINTERNAL, webextract.ErrorCode(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", webextract.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns message for application errors", func(t *testing.T) {
		t.Parallel()
		err := webextract.Errorf(webextract.EUNAVAILABLE, "HTTP %d for %s", 404, "https://example.com")
		assert.Equal(t, "HTTP 404 for https://example.com", webextract.ErrorMessage(err))
	})

	t.Run("masks non-application errors", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Internal error.", webextract.ErrorMessage(errors.New("boom")))
	})
}
