package transform

import "github.com/matzehuels/figscope/pkg/core/node"

// appearanceFields is the closed set of node fields that only affect how a
// node looks. Everything else is presumed functional and kept.
var appearanceFields = map[string]struct{}{
	// paint
	"fills": {}, "strokes": {}, "strokeWeight": {}, "strokeAlign": {}, "strokeCap": {},
	"strokeJoin": {}, "strokeDashes": {}, "dashPattern": {},
	"effects": {}, "blendMode": {}, "opacity": {}, "isMask": {},
	"backgroundColor": {}, "backgroundColorHex": {},
	"cornerRadius": {}, "rectangleCornerRadii": {},

	// typography
	"style": {}, "styles": {}, "fontFamily": {}, "fontWeight": {}, "fontSize": {},
	"letterSpacing": {}, "lineHeightPx": {}, "lineHeightPercent": {},
	"lineHeightPercentFontSize": {}, "lineHeightUnit": {},
	"textAlignHorizontal": {}, "textAlignVertical": {}, "textAutoResize": {},
	"textDecoration": {}, "textCase": {},

	// geometry and layout
	"fillGeometry": {}, "strokeGeometry": {},
	"arcData": {}, "constraints": {}, "layoutAlign": {}, "layoutGrow": {},
	"layoutPositioning": {}, "layoutSizingHorizontal": {}, "layoutSizingVertical": {},
	"primaryAxisSizingMode": {}, "counterAxisSizingMode": {},
	"primaryAxisAlignItems": {}, "counterAxisAlignItems": {},
	"paddingLeft": {}, "paddingRight": {}, "paddingTop": {}, "paddingBottom": {},
	"itemSpacing": {}, "counterAxisSpacing": {},
	"absoluteBoundingBox": {}, "absoluteRenderBounds": {}, "relativeTransform": {},
	"size": {}, "minWidth": {}, "maxWidth": {}, "minHeight": {}, "maxHeight": {},
	"exportSettings": {}, "preserveRatio": {},
}

// IsAppearance reports whether field is presentation-only and would be
// removed by [Filter].
func IsAppearance(field string) bool {
	_, ok := appearanceFields[field]
	return ok
}

// AppearanceFields returns the deny-set used by [Filter], in no particular
// order.
func AppearanceFields() []string {
	out := make([]string, 0, len(appearanceFields))
	for f := range appearanceFields {
		out = append(out, f)
	}
	return out
}

// Filter returns a copy of n without its appearance-only fields.
//
// Unknown fields pass through untouched, so new API fields survive until
// they are explicitly classified. Filter is idempotent and never modifies n;
// nested values (including children) are shared with the input.
func Filter(n node.Node) node.Node {
	return n.Without(IsAppearance)
}
