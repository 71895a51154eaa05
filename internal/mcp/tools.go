package mcp

import "github.com/mark3labs/mcp-go/mcp"

var searchContentTool = mcp.NewTool("search_content",
	mcp.WithDescription("Search menu items, documents and FAQ entries by case-insensitive substring."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Text to look for"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 20)"),
	),
)

var getMenuItemTool = mcp.NewTool("get_menu_item",
	mcp.WithDescription("Get one menu item by its action id, with its kind, parent and stored definition."),
	mcp.WithString("action_id",
		mcp.Required(),
		mcp.Description("The callback_data of the menu item"),
	),
)

var listFAQTool = mcp.NewTool("list_faq",
	mcp.WithDescription("List every FAQ question and answer with its action id."),
)
