package util

import (
	"Folio/internal/api/dto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPostForm() dto.PostFormDTO {
	return dto.PostFormDTO{
		Title:      "Hello world",
		Slug:       "hello-world",
		Color:      "#ff8800",
		CategoryID: 1,
		Content:    "Body",
		Thumbnail:  "thumbnails/2026/01/01/a.png",
		Tags:       []string{"go"},
		Authors:    []uint64{1},
	}
}

func kindsByField(errs []dto.FieldError) map[string]string {
	res := make(map[string]string, len(errs))
	for _, e := range errs {
		res[e.Field] = e.Kind
	}
	return res
}

func TestValidateDTO(t *testing.T) {
	t.Run("ValidFormHasNoErrors", func(t *testing.T) {
		form := validPostForm()
		errs, err := ValidateDTO(&form)
		require.NoError(t, err)
		assert.Nil(t, errs)
	})

	t.Run("CollectsEveryFieldError", func(t *testing.T) {
		errs, err := ValidateDTO(&dto.PostFormDTO{})
		require.NoError(t, err)

		kinds := kindsByField(errs)
		assert.Equal(t, map[string]string{
			"title":       KindRequired,
			"slug":        KindRequired,
			"color":       KindRequired,
			"category_id": KindRequired,
			"content":     KindRequired,
			"thumbnail":   KindRequired,
			"tags":        KindRequired,
			"authors":     KindEmptySelection,
		}, kinds)
	})

	t.Run("WhitespaceOnlyIsRequired", func(t *testing.T) {
		form := validPostForm()
		form.Title = "   "
		errs, err := ValidateDTO(&form)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"title": KindRequired}, kindsByField(errs))
	})

	t.Run("LengthBounds", func(t *testing.T) {
		form := validPostForm()
		form.Title = "ab"
		form.Slug = strings.Repeat("s", 101)
		errs, err := ValidateDTO(&form)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"title": KindMinLength,
			"slug":  KindMaxLength,
		}, kindsByField(errs))
	})

	t.Run("TitleBoundariesAreInclusive", func(t *testing.T) {
		for _, title := range []string{"abc", strings.Repeat("t", 50)} {
			form := validPostForm()
			form.Title = title
			errs, err := ValidateDTO(&form)
			require.NoError(t, err)
			assert.Nil(t, errs, title)
		}
	})

	t.Run("InvalidColor", func(t *testing.T) {
		form := validPostForm()
		form.Color = "orange"
		errs, err := ValidateDTO(&form)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"color": KindInvalidFormat}, kindsByField(errs))
	})

	t.Run("BlankTagReportsIndex", func(t *testing.T) {
		form := validPostForm()
		form.Tags = []string{"go", " "}
		errs, err := ValidateDTO(&form)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"tags[1]": KindRequired}, kindsByField(errs))
	})

	t.Run("CategoryName", func(t *testing.T) {
		errs, err := ValidateDTO(&dto.CategoryFormDTO{Name: strings.Repeat("n", 256)})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"name": KindMaxLength}, kindsByField(errs))
	})
}

func TestKindOf(t *testing.T) {
	cases := map[string]string{
		"required": KindRequired,
		"notempty": KindRequired,
		"min":      KindMinLength,
		"max":      KindMaxLength,
		"selected": KindEmptySelection,
		"hexcolor": KindInvalidFormat,
		"oneof":    KindInvalidFormat,
	}
	for tag, kind := range cases {
		assert.Equal(t, kind, KindOf(tag), tag)
	}
}
