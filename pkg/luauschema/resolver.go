package luauschema

import (
	"fmt"
	"strings"
)

// refPrefixes lists the accepted local pointer shapes, tried in order.
var refPrefixes = []string{"#/definitions/", "#/$defs/"}

// resolveRef maps a `$ref` string to a registry name, registering a
// placeholder for the target if it has not been seen yet. Only fragment-only
// local pointers of the shape `#/definitions/<key>` or `#/$defs/<key>` are
// accepted; anything else (absolute URIs, deeper pointers, other fragments)
// fails. Resolution never partially succeeds.
func (c *ConversionContext) resolveRef(ref string) (string, error) {
	for _, prefix := range refPrefixes {
		key, ok := strings.CutPrefix(ref, prefix)
		if !ok || key == "" || strings.Contains(key, "/") {
			continue
		}

		name := c.registry.RegisterPlaceholder(key)
		c.nameKeys[name] = key

		return name, nil
	}

	return "", fmt.Errorf("%w: unsupported $ref %q", ErrUnresolvedReference, ref)
}
