package enhancer

import (
	"strings"

	"playcraft-backend/internal/models"
)

// Markers keying each injection pass. A document carrying the marker is
// never injected twice.
const (
	loadedMarker   = "game-loaded-notifier"
	imageUtilMark  = "generateImageDataUrl"
	imageScriptTag = "game-image-utils"
)

const loadNotifierScript = `<script id="` + loadedMarker + `">
document.addEventListener('DOMContentLoaded', function () {
  try { window.parent.postMessage({ type: 'GAME_LOADED' }, '*'); } catch (e) {}
});
</script>`

// Seeded placeholder renderer plus broken-image repair. Hotlinks to
// hosts that reject embedding are rewritten to generated placeholders.
const imageUtilScript = `<script id="` + imageScriptTag + `">
(function () {
  var COLORS = ['#3b82f6', '#8b5cf6', '#ec4899', '#f59e0b', '#10b981', '#ef4444', '#06b6d4'];
  function seededRandom(seed) {
    return function () {
      seed = (seed * 9301 + 49297) % 233280;
      return seed / 233280;
    };
  }
  function hashCode(str) {
    var h = 0;
    for (var i = 0; i < str.length; i++) { h = ((h << 5) - h + str.charCodeAt(i)) | 0; }
    return Math.abs(h);
  }
  function generateImageDataUrl(label, width, height) {
    var canvas = document.createElement('canvas');
    canvas.width = width || 320;
    canvas.height = height || 200;
    var ctx = canvas.getContext('2d');
    var rand = seededRandom(hashCode(label || 'game'));
    ctx.fillStyle = COLORS[Math.floor(rand() * COLORS.length)];
    ctx.fillRect(0, 0, canvas.width, canvas.height);
    ctx.fillStyle = 'rgba(255,255,255,0.25)';
    for (var i = 0; i < 5; i++) {
      ctx.beginPath();
      ctx.arc(rand() * canvas.width, rand() * canvas.height, 10 + rand() * 40, 0, Math.PI * 2);
      ctx.fill();
    }
    ctx.fillStyle = '#ffffff';
    ctx.font = 'bold ' + Math.floor(canvas.height / 5) + 'px system-ui, sans-serif';
    ctx.textAlign = 'center';
    ctx.textBaseline = 'middle';
    var initials = (label || '?').trim().split(/\s+/).slice(0, 2).map(function (w) { return w.charAt(0).toUpperCase(); }).join('');
    ctx.fillText(initials || '?', canvas.width / 2, canvas.height / 2);
    return canvas.toDataURL('image/png');
  }
  function placeholderFor(img) {
    var label = img.alt || img.title || 'image';
    return generateImageDataUrl(label, img.width || 320, img.height || 200);
  }
  var BLOCKED_HOSTS = ['wikipedia.org', 'wikimedia.org', 'pixabay.com'];
  document.addEventListener('DOMContentLoaded', function () {
    var imgs = document.querySelectorAll('img');
    for (var i = 0; i < imgs.length; i++) {
      (function (img) {
        var src = img.getAttribute('src') || '';
        for (var j = 0; j < BLOCKED_HOSTS.length; j++) {
          if (src.indexOf(BLOCKED_HOSTS[j]) !== -1) {
            img.src = placeholderFor(img);
            return;
          }
        }
        img.onerror = function () {
          img.onerror = null;
          img.src = placeholderFor(img);
        };
      })(imgs[i]);
    }
  });
  window.generateImageDataUrl = generateImageDataUrl;
})();
</script>`

// Enhance applies the post-processing passes to a finished game. The
// input value is not modified; each pass skips documents that already
// carry its marker.
func Enhance(g models.Game) models.Game {
	content := injectBeforeClose(g.Content, loadedMarker, loadNotifierScript)
	if strings.Contains(content, "<img") {
		content = injectBeforeClose(content, imageUtilMark, imageUtilScript)
	}
	g.Content = content
	return g
}

// injectBeforeClose places snippet before </body>, falling back to
// </html>, then plain append. Documents already carrying marker pass
// through unchanged.
func injectBeforeClose(doc, marker, snippet string) string {
	if strings.Contains(doc, marker) {
		return doc
	}
	lower := strings.ToLower(doc)
	if idx := strings.LastIndex(lower, "</body>"); idx >= 0 {
		return doc[:idx] + snippet + "\n" + doc[idx:]
	}
	if idx := strings.LastIndex(lower, "</html>"); idx >= 0 {
		return doc[:idx] + snippet + "\n" + doc[idx:]
	}
	return doc + "\n" + snippet
}
