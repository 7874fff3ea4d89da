package meta

import "github.com/matzehuels/figscope/pkg/core/node"

// Comment is one entry of a file's comment threads. Replies carry the id of
// the comment they answer in ParentID.
type Comment struct {
	ID         *string `json:"id"`
	Message    *string `json:"message"`
	CreatedAt  *string `json:"createdAt"`
	ResolvedAt *string `json:"resolvedAt"`
	User       *string `json:"user"`
	OrderID    any     `json:"orderId"`
	ParentID   *string `json:"parentId"`
	ClientMeta any     `json:"clientMeta"`
}

// Comments projects the comment list, preserving its order.
//
// The API uses snake_case field names here; the output uses the same camel
// case as every other view. Reply threads are not resolved.
func Comments(list []node.Node) []Comment {
	out := make([]Comment, 0, len(list))
	for _, c := range list {
		user, _ := c.Map("user")
		orderID, _ := c.Get("order_id")
		clientMeta, _ := c.Get("client_meta")
		out = append(out, Comment{
			ID:         optString(c, "id"),
			Message:    optString(c, "message"),
			CreatedAt:  optString(c, "created_at"),
			ResolvedAt: optString(c, "resolved_at"),
			User:       optString(user, "handle"),
			OrderID:    orderID,
			ParentID:   optString(c, "parent_id"),
			ClientMeta: clientMeta,
		})
	}
	return out
}

// Replies groups comments by the id of the comment they answer. Top-level
// comments, with a null or empty parent id, are listed under "". Parents
// need not be present in list.
func Replies(list []Comment) map[string][]Comment {
	out := make(map[string][]Comment)
	for _, c := range list {
		parent := ""
		if c.ParentID != nil {
			parent = *c.ParentID
		}
		out[parent] = append(out[parent], c)
	}
	return out
}
