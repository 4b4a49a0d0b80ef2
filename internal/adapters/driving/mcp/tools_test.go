package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
)

func TestServer_handleResolveSubject(t *testing.T) {
	ctx := context.Background()

	t.Run("returns resolved subject", func(t *testing.T) {
		ports := &Ports{
			Resolver: &mockResolver{subject: "Accuboormachines"},
			Maker:    &mockMaker{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := ResolveSubjectInput{Catid: "100", Root: "Gereedschap", Sub3: "Accuboormachines"}
		_, output, err := server.handleResolveSubject(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "Accuboormachines", output.Subject)
	})

	t.Run("returns error when no field is usable", func(t *testing.T) {
		ports := &Ports{
			Resolver: &mockResolver{err: domain.ErrNoSubject},
			Maker:    &mockMaker{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleResolveSubject(ctx, nil, ResolveSubjectInput{Catid: "100"})
		require.ErrorIs(t, err, domain.ErrNoSubject)
	})
}

func TestServer_handleGenerateIcon(t *testing.T) {
	ctx := context.Background()

	t.Run("returns rendered icon", func(t *testing.T) {
		style := domain.DefaultHouseStyle()
		maker := &mockMaker{
			result: domain.RowResult{
				Catid:   "100",
				Subject: "Boren",
				Status:  domain.RowOK,
				Decision: domain.Generated("lookup_disabled"),
				Icon: domain.NormalizedIcon{
					Width:  style.CanvasSize,
					Height: style.CanvasSize,
					Style:  style,
					Primitives: []domain.Primitive{
						{Kind: domain.KindCircle, Attrs: map[string]string{"cx": "128", "cy": "128", "r": "96"}},
						{Kind: domain.KindLine, Attrs: map[string]string{"x1": "16", "y1": "128", "x2": "240", "y2": "128"}},
					},
					PathHash: "deadbeef",
				},
			},
		}
		ports := &Ports{Resolver: &mockResolver{}, Maker: maker}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := GenerateIconInput{Catid: "100", Subject: "Boren"}
		_, output, err := server.handleGenerateIcon(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "100", maker.gotCatid)
		assert.Equal(t, "Boren", maker.gotSubject)
		assert.Equal(t, "deadbeef", output.PathHash)
		assert.Equal(t, []string{"circle", "line"}, output.PrimitivesUsed)
		assert.Equal(t, domain.GeneratedMarker, output.SourceIcon)
		assert.True(t, output.ValidationPassed)
		assert.Contains(t, output.SVG, `stroke="#E63B14"`)
	})

	t.Run("returns error on pipeline failure", func(t *testing.T) {
		ports := &Ports{
			Resolver: &mockResolver{},
			Maker:    &mockMaker{err: errors.New("synthesis failed")},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleGenerateIcon(ctx, nil, GenerateIconInput{Catid: "100", Subject: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "synthesis failed")
	})
}

func TestServer_handleSearchIcons(t *testing.T) {
	ctx := context.Background()

	t.Run("returns ranked candidates", func(t *testing.T) {
		ports := &Ports{
			Resolver: &mockResolver{},
			Maker:    &mockMaker{},
			Source: &mockSource{candidates: []domain.Candidate{
				{Title: "busy", SourceURL: "https://x/busy.svg",
					Markup: `<svg><path d="M0 0 L1 1 L2 2 C3 3 4 4 5 5"/><rect x="0" y="0" width="1" height="1"/></svg>`},
				{Title: "simple", SourceURL: "https://x/simple.svg",
					Markup: `<svg><circle cx="1" cy="1" r="1"/></svg>`},
			}},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := SearchIconsInput{Query: "drill"}
		_, output, err := server.handleSearchIcons(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, "simple", output.Candidates[0].Title, "simplest first")
		assert.True(t, output.Candidates[0].Acceptable)
	})

	t.Run("returns error on source failure", func(t *testing.T) {
		ports := &Ports{
			Resolver: &mockResolver{},
			Maker:    &mockMaker{},
			Source:   &mockSource{err: domain.ErrLookupFailed},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleSearchIcons(ctx, nil, SearchIconsInput{Query: "drill"})
		require.ErrorIs(t, err, domain.ErrLookupFailed)
	})
}

func TestPortsValidate(t *testing.T) {
	assert.ErrorIs(t, (&Ports{Maker: &mockMaker{}}).Validate(), ErrMissingResolver)
	assert.ErrorIs(t, (&Ports{Resolver: &mockResolver{}}).Validate(), ErrMissingIconMaker)
	assert.NoError(t, (&Ports{Resolver: &mockResolver{}, Maker: &mockMaker{}}).Validate())
}
