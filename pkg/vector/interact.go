package vector

import "fmt"

// Interaction behaviors are emitted as canvas-level styles and scripts.
// Elements opt in through data-* attributes and well-known classes; the
// scripts assume nothing else about the tree.

const tooltipCSS = `
    .tip { pointer-events: none; transition: opacity 0.15s ease; }
    .tip[visibility="hidden"] { opacity: 0; }
    .tip[visibility="visible"] { opacity: 1; }`

const tooltipJS = `
    const svg = document.querySelector('svg');
    const vb = svg.viewBox.baseVal;
    const sx = vb.width / parseFloat(svg.getAttribute('width'));
    const sy = vb.height / parseFloat(svg.getAttribute('height'));
    const tip = svg.querySelector('.tip');
    const tipRect = tip.querySelector('rect');
    const tipText = tip.querySelector('text');
    svg.querySelectorAll('[data-tip]').forEach(el => {
      el.addEventListener('mouseenter', () => {
        tipText.textContent = el.dataset.tip;
        tipRect.setAttribute('width', (tipText.getBBox().width + 12).toFixed(1));
        tip.setAttribute('visibility', 'visible');
      });
      el.addEventListener('mousemove', e => {
        const box = svg.getBoundingClientRect();
        const ux = vb.x + (e.clientX - box.left) / box.width * vb.width;
        const uy = vb.y + (e.clientY - box.top) / box.height * vb.height;
        tip.setAttribute('transform', 'translate(' + ux.toFixed(2) + ',' + uy.toFixed(2) + ') scale(' + sx.toFixed(6) + ',' + sy.toFixed(6) + ')');
      });
      el.addEventListener('mouseleave', () => tip.setAttribute('visibility', 'hidden'));
    });`

const dragJS = `
    const panSvg = document.querySelector('svg');
    const pan = panSvg.querySelector('.pan');
    const panVb = panSvg.viewBox.baseVal;
    const panUpx = panVb.width / parseFloat(panSvg.getAttribute('width'));
    const panMax = %.2f;
    let panOff = 0, panAnchor = 0, panning = false;
    panSvg.addEventListener('pointerdown', e => { panning = true; panAnchor = e.clientX - panOff; panSvg.setPointerCapture(e.pointerId); });
    panSvg.addEventListener('pointermove', e => {
      if (!panning) return;
      panOff = Math.min(0, Math.max(-panMax, e.clientX - panAnchor));
      pan.setAttribute('transform', 'translate(' + (panOff * panUpx).toFixed(2) + ',0)');
    });
    panSvg.addEventListener('pointerup', () => { panning = false; });`

const wheelJS = `
    document.querySelector('svg').addEventListener('wheel', e => {
      e.currentTarget.dispatchEvent(new CustomEvent('%s', { bubbles: true, detail: { deltaX: e.deltaX, deltaY: e.deltaY, deltaMode: e.deltaMode } }));
    }, { passive: true });`

// AttachTooltip adds the shared tooltip group and its positioning
// script. Any element carrying a data-tip attribute shows the tooltip
// with that text while hovered; the tooltip follows the pointer. The
// group is authored in pixel coordinates and the script supplies the
// counter-scale, so the tooltip keeps its size in stretched containers.
func AttachTooltip(c *Canvas, fontFamily string) {
	tip := &Group{
		Class: "tip",
		Px:    true,
		Attrs: Attr{"visibility": "hidden"},
	}
	tip.Append(
		&Rect{X: 10, Y: -30, W: 60, H: 20, Rx: 4, Fill: "#333333"},
		&Text{X: 16, Y: -16, Size: 11, Fill: "#ffffff", Family: fontFamily},
	)
	c.Append(tip)
	c.AddStyle(tooltipCSS)
	c.AddScript(tooltipJS)
}

// AttachDrag adds a pointer-drag script panning the group classed
// "pan" along x. maxPan is the pan range in pixels; the translation is
// clamped to [-maxPan, 0] and converted to logical units.
func AttachDrag(c *Canvas, maxPan float64) {
	c.AddScript(fmt.Sprintf(dragJS, maxPan))
}

// AttachWheel re-dispatches wheel input on the root as a bubbling
// CustomEvent carrying the original deltas. The chart itself never
// zooms or scrolls; consumers listen for the named event.
func AttachWheel(c *Canvas, event string) {
	c.AddScript(fmt.Sprintf(wheelJS, event))
}
