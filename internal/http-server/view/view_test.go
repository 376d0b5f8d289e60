package view

import (
	"bytes"
	"testing"
	"time"

	"bannerweb/internal/banner"
	"bannerweb/internal/coordinator"
	"bannerweb/internal/form"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeState struct {
	snapshot coordinator.Snapshot
	notices  []coordinator.Notice
}

func (f fakeState) Snapshot() coordinator.Snapshot { return f.snapshot }
func (f fakeState) Notices() []coordinator.Notice { return f.notices }

type fakeForm form.View

func (f fakeForm) View() form.View { return form.View(f) }

func TestHref(t *testing.T) {
	assert.Equal(t, "https://www.x.com", Href("www.x.com"))
	assert.Equal(t, "http://x.com", Href("http://x.com"))
	assert.Equal(t, "", Href(""))
}

func TestRender_Banner(t *testing.T) {
	p := NewPage(fakeState{
		snapshot: coordinator.Snapshot{
			Banner:  &banner.Banner{Description: "Sale <today>", Link: "www.x.com", Timer: 5, IsVisible: true},
			Display: &coordinator.DisplayView{Description: "Sale <today>", Link: "www.x.com", Remaining: 4},
		},
		notices: []coordinator.Notice{{ID: "n1", Kind: coordinator.NoticeSuccess, Message: "Banner updated successfully!"}},
	}, fakeForm{Draft: form.Draft{Description: "Sale <today>", Timer: "5", IsVisible: true}}, 1500*time.Millisecond)

	assert.Equal(t, int64(1500), p.PollMillis)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, p))
	out := buf.String()

	assert.Contains(t, out, "Sale &lt;today&gt;")
	assert.Contains(t, out, `href="https://www.x.com"`)
	assert.Contains(t, out, `<span id="remaining">4</span>`)
	assert.Contains(t, out, `data-id="n1"`)
	assert.Contains(t, out, "checked")
	assert.Contains(t, out, `data-poll="1500"`)
	assert.NotContains(t, out, `id="spinner"`)
}

func TestRender_LoadingAndSubmitting(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Page{Loading: true}))
	assert.Contains(t, buf.String(), `id="spinner"`)
	assert.NotContains(t, buf.String(), "Dashboard")

	buf.Reset()
	require.NoError(t, Render(&buf, Page{Form: form.View{Submitting: true, Error: form.MsgInvalidLink}}))
	out := buf.String()
	assert.Contains(t, out, "Updating...")
	assert.Contains(t, out, "disabled")
	assert.Contains(t, out, form.MsgInvalidLink)
	assert.NotContains(t, out, `id="banner"`)
}
