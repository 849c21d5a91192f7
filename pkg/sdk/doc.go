// Package tracuu provides an embedded Go client for the tracuu knowledge
// base. It speaks directly to the Redis store shared with the HTTP server,
// so search, related-topic ranking and CRUD all run in-process.
//
//	client, _ := tracuu.New(ctx, tracuu.WithRedis("localhost:6379", ""))
//	defer client.Close()
//
//	topic, _ := client.Topics().Create(ctx, "Kế thừa", "Cơ chế tái sử dụng mã nguồn", 1)
//	res, _ := client.Search().Query(ctx, "ke thua", 10)
//	similar, _ := client.Topics().Related(ctx, topic.ID, 5)
//
// Matching is diacritic-insensitive throughout: the folded query "ke thua"
// finds the topic titled "Kế thừa".
package tracuu
