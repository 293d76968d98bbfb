package models

// PostCategoryLink ties one news post to one category. A post may carry any
// number of links, independent of its free-text category field.
type PostCategoryLink struct {
	ID           int    `json:"id"`
	PostID       int    `json:"postId"`
	CategoryID   int    `json:"categoryId"`
	PostTitle    string `json:"postTitle,omitempty"`
	CategoryName string `json:"categoryName,omitempty"`
}
