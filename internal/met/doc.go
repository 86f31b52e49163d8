// Package met provides a client for the Metropolitan Museum of Art
// collection API.
//
// The API has three endpoints the downloader uses:
//
//	GET /search?q=<query>   object IDs matching a free text query
//	GET /objects            every object ID in the collection
//	GET /objects/<id>       the full record of one object
//
// Search and listing both answer with {"total": N, "objectIDs": [...]},
// where objectIDs is null when nothing matched. Object records are decoded
// into model.Artwork with the original JSON kept for reporting.
//
// # Basic Usage
//
//	client := met.NewClient(httpClient, config.DefaultAPIBaseURL)
//
//	ids, err := client.Search(ctx, "van gogh")
//	if err != nil {
//	    return err
//	}
//
//	art, err := client.Fetch(ctx, ids[0])
//	if errors.Is(err, met.ErrNotFound) {
//	    // the listing referenced a removed object
//	}
package met
