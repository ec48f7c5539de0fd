package goquery_test

import (
	"testing"

	fggoquery "github.com/terrafirmagreg/fieldguide/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ExtractSection(t *testing.T) {
	t.Parallel()

	e := fggoquery.NewExtractor()
	ref := pageRef("en_us", "mechanics/crops.html")

	t.Run("collects text up to the next heading of equal level", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="col-md-9">
			<h1>Crops</h1>
			<h2 id="scythes">Scythes</h2>
			<p>A scythe harvests crops.</p>
			<p>Blades wear down over time.</p>
			<h2 id="next">Next Topic</h2>
			<p>Other content.</p>
		</div></body></html>`
		sect, err := e.ExtractSection(html, ref, "scythes")

		require.NoError(t, err)
		require.NotNil(t, sect)
		assert.Equal(t, "Scythes", sect.Title)
		assert.Equal(t, "A scythe harvests crops.\n\nBlades wear down over time.", sect.Description)
	})

	t.Run("deeper headings become bolded subheadings", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="col-md-9">
			<h2 id="care">Care</h2>
			<h3>Sharpening</h3>
			<p>Use a whetstone.</p>
		</div></body></html>`
		sect, err := e.ExtractSection(html, ref, "care")

		require.NoError(t, err)
		require.NotNil(t, sect)
		assert.Equal(t, "**Sharpening**\n\nUse a whetstone.", sect.Description)
	})

	t.Run("missing anchor yields nil", func(t *testing.T) {
		t.Parallel()

		sect, err := e.ExtractSection(`<html><body><p>text</p></body></html>`, ref, "nope")

		require.NoError(t, err)
		assert.Nil(t, sect)
	})

	t.Run("blacklisted anchor yields nil", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div id="glb-viewer-2"><p>model</p></div></body></html>`
		sect, err := e.ExtractSection(html, ref, "glb-viewer-2")

		require.NoError(t, err)
		assert.Nil(t, sect)
	})

	t.Run("empty fragment yields nil", func(t *testing.T) {
		t.Parallel()

		sect, err := e.ExtractSection(`<html><body></body></html>`, ref, "")

		require.NoError(t, err)
		assert.Nil(t, sect)
	})

	t.Run("drops title echoes and duplicate blocks", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="col-md-9">
			<h2 id="scythes">Scythes</h2>
			<p>Scythes</p>
			<p>Real content about harvesting.</p>
			<p>Real content about harvesting.</p>
		</div></body></html>`
		sect, err := e.ExtractSection(html, ref, "scythes")

		require.NoError(t, err)
		require.NotNil(t, sect)
		assert.Equal(t, "Real content about harvesting.", sect.Description)
	})

	t.Run("non-heading anchor takes its id as title", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="col-md-9">
			<div id="notes"></div>
			<p>Loose notes.</p>
		</div></body></html>`
		sect, err := e.ExtractSection(html, ref, "notes")

		require.NoError(t, err)
		require.NotNil(t, sect)
		assert.Equal(t, "notes", sect.Title)
		assert.Equal(t, "Loose notes.", sect.Description)
	})

	t.Run("picks the first image near the anchor", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="col-md-9">
			<h2 id="scythes">Scythes</h2>
			<p>A scythe harvests crops.</p>
			<img src="images/scythe.png">
		</div></body></html>`
		sect, err := e.ExtractSection(html, ref, "scythes")

		require.NoError(t, err)
		require.NotNil(t, sect)
		assert.Equal(t, siteRoot+"images/scythe.png", sect.Image)
	})

	t.Run("stops at a breadcrumb region", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="col-md-9">
			<h2 id="scythes">Scythes</h2>
			<p>A scythe harvests crops.</p>
			<nav aria-label="breadcrumb"><p>Home</p></nav>
			<p>Footer text.</p>
		</div></body></html>`
		sect, err := e.ExtractSection(html, ref, "scythes")

		require.NoError(t, err)
		require.NotNil(t, sect)
		assert.Equal(t, "A scythe harvests crops.", sect.Description)
	})
}
