/*
Package ddb provides a DynamoDB implementation of the ledger Gateway
interface.

The Gateway uses a single-table design with composite keys:

	PK                       SK                      holds
	STATE#<key>              CURRENT                 current encoded value
	STATE#<key>              HIST#<nanos>#<txid>     one history entry per write
	PRIV#<collection>#<key>  DETAILS                 confidential payload (binary)

PutState writes the current item and its history item in one
TransactWriteItems call, which gives the append-on-write property the
registry relies on: the history log can never miss a committed write.

GetHistory is a Query on the key's partition with a begins_with
condition on the HIST# prefix, returned in ascending sort-key order,
so entries come back oldest first.

For usage, see the integration tests, which load AWS credentials from
the environment (or a .env file) and skip when none are configured.
*/
package ddb
