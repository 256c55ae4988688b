package snippet

import "fmt"

const embedStyle = "border: 1px solid #ddd; border-radius: 8px; box-shadow: 0 4px 8px rgba(0,0,0,0.1);"

const embedAllow = "camera; microphone; autoplay; encrypted-media; fullscreen; geolocation"

// EmbedSrc builds the iframe source URL with the embed query parameters.
func EmbedSrc(o Options) string {
	return fmt.Sprintf("%s?embed=true&theme=%s&showBranding=%s", o.AppURL, o.Theme, boolString(o.ShowBranding))
}

// IframeCode renders the HTML iframe embed snippet for the given options.
func IframeCode(o Options) string {
	return fmt.Sprintf(`<iframe
    src="%s"
    width="%d"
    height="%d"
    style="%s"
    allow="%s"
    frameborder="0"
    scrolling="auto"
></iframe>`, EmbedSrc(o), o.Width, o.Height, embedStyle, embedAllow)
}

// ResponsiveIframeCode renders an iframe that stretches to its container width.
func ResponsiveIframeCode(o Options) string {
	return fmt.Sprintf(`<iframe
    src="%s"
    width="100%%"
    height="%d"
    style="%s"
    allow="%s"
    frameborder="0"
    scrolling="auto"
></iframe>`, EmbedSrc(o), o.Height, embedStyle, embedAllow)
}

// ScriptCode renders the JavaScript injection embed snippet for the given options.
func ScriptCode(o Options) string {
	return fmt.Sprintf(`<div id="carbon-footprint-calculator"></div>
<script>
    (function() {
        var iframe = document.createElement('iframe');
        iframe.src = "%s";
        iframe.width = "%d";
        iframe.height = "%d";
        iframe.style = "%s";
        iframe.allow = "%s";
        iframe.frameBorder = "0";
        iframe.scrolling = "auto";

        document.getElementById('carbon-footprint-calculator').appendChild(iframe);
    })();
</script>`, EmbedSrc(o), o.Width, o.Height, embedStyle, embedAllow)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
