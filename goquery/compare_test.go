package goquery_test

import (
	"testing"

	"github.com/fwojciec/bodymd/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructurallyEqual(t *testing.T) {
	t.Parallel()

	t.Run("identical fragments", func(t *testing.T) {
		t.Parallel()

		equal, err := goquery.StructurallyEqual(
			`<body><h1>Hi</h1></body>`,
			`<body><h1>Hi</h1></body>`,
		)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("fragment equals full document", func(t *testing.T) {
		t.Parallel()

		equal, err := goquery.StructurallyEqual(
			`<html><head><title>t</title></head><body><p>x</p></body></html>`,
			`<body><p>x</p></body>`,
		)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("attribute order does not matter", func(t *testing.T) {
		t.Parallel()

		equal, err := goquery.StructurallyEqual(
			`<body><div id="a" class="b">x</div></body>`,
			`<body><div class="b" id="a">x</div></body>`,
		)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("whitespace differences are normalized", func(t *testing.T) {
		t.Parallel()

		equal, err := goquery.StructurallyEqual(
			`<body><p>hello   world</p></body>`,
			`<body><p>hello world</p></body>`,
		)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("comments are ignored", func(t *testing.T) {
		t.Parallel()

		equal, err := goquery.StructurallyEqual(
			`<body><!-- note --><p>x</p></body>`,
			`<body><p>x</p></body>`,
		)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different text is unequal", func(t *testing.T) {
		t.Parallel()

		equal, err := goquery.StructurallyEqual(
			`<body><p>one</p></body>`,
			`<body><p>two</p></body>`,
		)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("different structure is unequal", func(t *testing.T) {
		t.Parallel()

		equal, err := goquery.StructurallyEqual(
			`<body><p>x</p></body>`,
			`<body><div>x</div></body>`,
		)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("different attribute values are unequal", func(t *testing.T) {
		t.Parallel()

		equal, err := goquery.StructurallyEqual(
			`<body><a href="/a">x</a></body>`,
			`<body><a href="/b">x</a></body>`,
		)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("missing child is unequal", func(t *testing.T) {
		t.Parallel()

		equal, err := goquery.StructurallyEqual(
			`<body><p>x</p><p>y</p></body>`,
			`<body><p>x</p></body>`,
		)

		require.NoError(t, err)
		assert.False(t, equal)
	})
}
