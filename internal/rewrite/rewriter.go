package rewrite

import "github.com/svetikas/ttbuild/internal/document"

// Apply runs the rules against a top-level document, in order. Plugin files
// are arrays of component objects, so an array document has the rules
// applied to each object element. Elements (or roots) that are not objects
// give the rules nothing to evaluate and are left alone.
func Apply(doc *document.Value, rules []Rule) error {
	switch doc.Kind {
	case document.KindObject:
		return applyToObject(doc.Obj, rules)
	case document.KindArray:
		for _, elem := range doc.Arr {
			if elem.Kind != document.KindObject {
				continue
			}
			if err := applyToObject(elem.Obj, rules); err != nil {
				return err
			}
		}
	}
	return nil
}

func applyToObject(obj *document.Object, rules []Rule) error {
	for _, rule := range rules {
		if err := rule.Apply(obj); err != nil {
			return err
		}
	}
	return nil
}

// PluginPolicy is the fixed rule set for plugin component files. The
// privileged tag is deprecated and no longer considered secure; strict lua
// is a development aid that must not ship; components carrying scripts get
// their Lua muted unless the author decided otherwise.
func PluginPolicy() []Rule {
	return []Rule{
		RejectKey{
			Key:  "privileged",
			Hint: `this tag is deprecated and no longer considered secure, replace it with "require privileges": true`,
		},
		StripKey{Key: "strict lua"},
		ConditionalInsert{
			Key:   "mute lua",
			Value: document.True(),
			When:  HasAnyKey("script", "scripts"),
		},
	}
}
