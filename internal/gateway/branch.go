package gateway

import "context"

// BranchClient reads the branch manager's own-branch views. The upstream
// scopes every read to the token's branch and answers with an empty list for
// any other branch code, so callers always pass the claims' branch code.
type BranchClient struct {
	c *Client
}

// NewBranchClient builds the client.
func NewBranchClient(c *Client) *BranchClient {
	return &BranchClient{c: c}
}

// Revenue returns the branch revenue series grouped by day, month or year.
func (bc *BranchClient) Revenue(ctx context.Context, branchCode, granularity string) ([]Row, error) {
	var out itemsEnvelope
	resp, err := bc.c.R(ctx).
		SetQueryParam("granularity", granularity).
		SetResult(&out).
		Get("/branch/" + branchCode + "/revenue")
	if err := bc.c.check(resp, err); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// ProductInventory lists the branch's product stock levels.
func (bc *BranchClient) ProductInventory(ctx context.Context, branchCode string) ([]Row, error) {
	var out itemsEnvelope
	resp, err := bc.c.R(ctx).
		SetResult(&out).
		Get("/branch/" + branchCode + "/inventory/products")
	if err := bc.c.check(resp, err); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// VaccineInventory lists the branch's vaccine stock levels.
func (bc *BranchClient) VaccineInventory(ctx context.Context, branchCode string) ([]Row, error) {
	var out itemsEnvelope
	resp, err := bc.c.R(ctx).
		SetResult(&out).
		Get("/branch/" + branchCode + "/inventory/vaccines")
	if err := bc.c.check(resp, err); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// Vaccinations lists vaccinations administered at the branch in a date
// range.
func (bc *BranchClient) Vaccinations(ctx context.Context, branchCode, fromDate, toDate string) ([]Row, error) {
	var out itemsEnvelope
	resp, err := bc.c.R(ctx).
		SetQueryParam("from_date", fromDate).
		SetQueryParam("to_date", toDate).
		SetResult(&out).
		Get("/branch/" + branchCode + "/vaccinations")
	if err := bc.c.check(resp, err); err != nil {
		return nil, err
	}
	return out.Items, nil
}
